package domain

import "time"

// Employee represents one member of the roster.
// ID is assigned at creation and never changes; the roster is append-only
// (there is no deletion path).
type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeNumber string `json:"employeeNumber"`
	Department     string `json:"department"`
	Avatar         string `json:"avatar"`
}

// AttendanceRecord is one check-in. ID and EmployeeID are immutable;
// Timestamp may be corrected after the fact. Records are never deleted.
//
// EmployeeID is not checked against the roster: a dangling reference is
// tolerated and simply never matches any query.
type AttendanceRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Timestamp  time.Time `json:"timestamp"`
}

// ExportRow is one line of the per-employee attendance export
// (CSV and XLSX share the same shape and column order).
type ExportRow struct {
	Nombre string
	Fecha  string
	Hora   string
	Estado string
}

// FaultTier classifies a 30-day fault count for display purposes.
// The thresholds are a contract consumers rely on: sorting and the
// check-in card coloring both key off them.
type FaultTier int

const (
	TierNone     FaultTier = iota // count == 0
	TierWarning                   // count == 1
	TierSerious                   // count == 2
	TierCritical                  // count >= 3
)

// TierFor maps a fault count to its severity tier.
func TierFor(count int) FaultTier {
	switch {
	case count <= 0:
		return TierNone
	case count == 1:
		return TierWarning
	case count == 2:
		return TierSerious
	default:
		return TierCritical
	}
}

func (t FaultTier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierWarning:
		return "warning"
	case TierSerious:
		return "serious"
	default:
		return "critical"
	}
}
