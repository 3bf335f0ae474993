package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/logger"
)

type rosterService struct {
	store   domain.AttendanceStore
	indexer EmployeeIndexer
}

// EmployeeIndexer receives roster additions for search indexing. It is
// optional; a nil indexer disables indexing entirely.
type EmployeeIndexer interface {
	IndexEmployee(ctx context.Context, e domain.Employee) error
}

// NewRosterService creates the roster service. indexer may be nil.
func NewRosterService(store domain.AttendanceStore, indexer EmployeeIndexer) domain.RosterService {
	return &rosterService{store: store, indexer: indexer}
}

func (s *rosterService) Employees(ctx context.Context) ([]domain.Employee, error) {
	return s.store.LoadEmployees(ctx)
}

// AddEmployee stays deliberately permissive: empty names or departments
// are the caller's problem, matching the tool this replaces. The HTTP
// layer rejects them before they get here.
func (s *rosterService) AddEmployee(ctx context.Context, name, department, employeeNumber string) (*domain.Employee, error) {
	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(employeeNumber)
	if number == "" {
		// Derived from roster size at insertion: a 6-member roster yields
		// EMP007. With no deletion path this can never produce duplicates.
		number = fmt.Sprintf("EMP%03d", len(employees)+1)
	}

	employee := domain.Employee{
		ID:             uuid.NewString(),
		Name:           name,
		EmployeeNumber: number,
		Department:     department,
		Avatar:         avatarURL(name),
	}

	employees = append(employees, employee)
	if err := s.store.SaveEmployees(ctx, employees); err != nil {
		return nil, err
	}

	if s.indexer != nil {
		// Indexing is read-side convenience; the store already holds the
		// truth, so an index failure must not fail the addition.
		if err := s.indexer.IndexEmployee(ctx, employee); err != nil {
			logger.WarnLog(ctx, "failed to index employee %s: %v", employee.ID, err)
		}
	}
	return &employee, nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random&color=fff"
}
