package domain

import (
	"context"
	"time"
)

// AttendanceStore is the persistence contract for the two collections.
// Writes are whole-collection replacements: every mutation reads the full
// collection, transforms it in memory and writes it back. Safe only for a
// single writer, which is the deployment model here.
type AttendanceStore interface {
	// LoadEmployees returns the persisted roster, seeding and persisting
	// the default roster if none exists yet. It never returns an empty
	// roster without an error.
	LoadEmployees(ctx context.Context) ([]Employee, error)
	SaveEmployees(ctx context.Context, employees []Employee) error

	// LoadRecords returns the persisted record log, or an empty log if
	// nothing was stored yet. Records are never seeded.
	LoadRecords(ctx context.Context) ([]AttendanceRecord, error)
	SaveRecords(ctx context.Context, records []AttendanceRecord) error
}

// AttendanceService exposes the operations on the check-in log.
type AttendanceService interface {
	// AddRecord registers a check-in for the employee at the current
	// instant and returns the stored record.
	AddRecord(ctx context.Context, employeeID string) (*AttendanceRecord, error)

	// EmployeeRecords returns the employee's records sorted by timestamp
	// descending. Records with equal timestamps keep their stored order.
	EmployeeRecords(ctx context.Context, employeeID string) ([]AttendanceRecord, error)

	// UpdateRecord replaces the timestamp of one record, leaving every
	// other record untouched. Returns ErrRecordNotFound for unknown ids.
	UpdateRecord(ctx context.Context, recordID string, ts time.Time) error

	// FaultCount counts the employee's late check-ins within the trailing
	// 30-day window ending at the moment of the call.
	FaultCount(ctx context.Context, employeeID string) (int, error)
}

// RosterService exposes the operations on the employee roster.
type RosterService interface {
	// Employees returns the full roster, seeding defaults on first use.
	Employees(ctx context.Context) ([]Employee, error)

	// AddEmployee appends a new employee. An empty employeeNumber is
	// auto-generated from the roster size at insertion (EMP%03d).
	// Field validation is the caller's responsibility.
	AddEmployee(ctx context.Context, name, department, employeeNumber string) (*Employee, error)
}
