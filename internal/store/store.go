package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asistenciapp/backend/internal/domain"
)

// Fixed keys for the two logical collections. They are carried over from
// the storage layout this tool replaces, so existing exports stay readable.
const (
	KeyEmployees = "asistencia_employees"
	KeyRecords   = "asistencia_records"
)

// ErrKeyNotFound is returned by a Backend when a collection was never written.
var ErrKeyNotFound = errors.New("store: key not found")

// Backend is a durable key-value mapping from a fixed collection key to the
// collection's JSON document. Put fully replaces the prior document.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, doc []byte) error
}

// Store persists the roster and the record log through a Backend, handling
// JSON encoding and first-use seeding in one place.
//
// A document that is present but unparseable is a hard error: we fail fast
// rather than reseed over data someone may still want to recover.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// LoadEmployees returns the persisted roster. On first access the default
// roster is written and returned, so the result is never empty.
func (s *Store) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	doc, err := s.backend.Get(ctx, KeyEmployees)
	if errors.Is(err, ErrKeyNotFound) {
		seed := DefaultRoster()
		if err := s.SaveEmployees(ctx, seed); err != nil {
			return nil, fmt.Errorf("failed to seed roster: %w", err)
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	var employees []domain.Employee
	if err := json.Unmarshal(doc, &employees); err != nil {
		return nil, fmt.Errorf("corrupt roster document: %w", err)
	}
	return employees, nil
}

// SaveEmployees replaces the entire persisted roster.
func (s *Store) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	doc, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := s.backend.Put(ctx, KeyEmployees, doc); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// LoadRecords returns the persisted record log, or an empty log if nothing
// was ever written. Records are not seeded.
func (s *Store) LoadRecords(ctx context.Context) ([]domain.AttendanceRecord, error) {
	doc, err := s.backend.Get(ctx, KeyRecords)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.AttendanceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	var records []domain.AttendanceRecord
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("corrupt record log document: %w", err)
	}
	return records, nil
}

// SaveRecords replaces the entire persisted record log.
func (s *Store) SaveRecords(ctx context.Context, records []domain.AttendanceRecord) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := s.backend.Put(ctx, KeyRecords, doc); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}
