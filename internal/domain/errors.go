package domain

import "errors"

// ErrRecordNotFound is returned when an amendment targets a record id that
// does not exist in the log. The original tool silently ignored this; we
// surface it so callers can tell a no-op from a successful correction.
var ErrRecordNotFound = errors.New("attendance record not found")

// ErrEmployeeNotFound is returned by lookups over the roster.
var ErrEmployeeNotFound = errors.New("employee not found")
