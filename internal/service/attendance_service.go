package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/asistenciapp/backend/internal/domain"
)

// FaultWindowDays is the size of the trailing window a fault is counted
// in. The window is relative to the moment of each query, not a calendar
// period.
const FaultWindowDays = 30

type attendanceService struct {
	store domain.AttendanceStore
	now   func() time.Time
}

// NewAttendanceService creates the check-in log service on top of a store.
func NewAttendanceService(store domain.AttendanceStore) domain.AttendanceService {
	return &attendanceService{store: store, now: time.Now}
}

func (s *attendanceService) AddRecord(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	// Record ids are random, not derived from the creation instant, so two
	// check-ins in the same instant can never collide.
	record := domain.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Timestamp:  s.now(),
	}

	records = append(records, record)
	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *attendanceService) EmployeeRecords(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.AttendanceRecord, 0)
	for _, r := range records {
		if r.EmployeeID == employeeID {
			matched = append(matched, r)
		}
	}

	// Newest first; equal timestamps keep their stored order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched, nil
}

func (s *attendanceService) UpdateRecord(ctx context.Context, recordID string, ts time.Time) error {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].ID == recordID {
			records[i].Timestamp = ts
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("cannot amend record %s: %w", recordID, domain.ErrRecordNotFound)
	}

	return s.store.SaveRecords(ctx, records)
}

// FaultCount counts late check-ins within the trailing window. The tier
// mapping consumers apply to the result is domain.TierFor: 0 none,
// 1 warning, 2 serious, >= 3 critical.
func (s *attendanceService) FaultCount(ctx context.Context, employeeID string) (int, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return 0, err
	}

	windowStart := s.now().AddDate(0, 0, -FaultWindowDays)
	count := 0
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		// Closed lower bound: a record exactly at windowStart still counts.
		if r.Timestamp.Before(windowStart) {
			continue
		}
		if domain.IsLate(r.Timestamp) {
			count++
		}
	}
	return count, nil
}
