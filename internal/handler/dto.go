package handler

// CreateEmployeeRequest is the body of POST /employees. Name and
// department are rejected here when blank; the roster service itself
// stays permissive.
type CreateEmployeeRequest struct {
	Name           string `json:"name" validate:"required"`
	Department     string `json:"department" validate:"required"`
	EmployeeNumber string `json:"employeeNumber"`
}

// CheckInRequest is the body of POST /checkins.
type CheckInRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

// UpdateRecordRequest is the body of PUT /records/:id. Timestamp must be
// RFC 3339 with offset so the corrected instant round-trips losslessly.
type UpdateRecordRequest struct {
	Timestamp string `json:"timestamp" validate:"required"`
}

// EmployeeResponse is one roster entry plus its derived fault data.
type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeNumber string `json:"employeeNumber"`
	Department     string `json:"department"`
	Avatar         string `json:"avatar"`
	FaultCount     int    `json:"faultCount"`
	FaultTier      string `json:"faultTier"`
}

// FaultResponse is the body of GET /employees/:id/faults.
type FaultResponse struct {
	EmployeeID string `json:"employeeId"`
	Count      int    `json:"count"`
	Tier       string `json:"tier"`
}
