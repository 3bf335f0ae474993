package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/service/serviceutils"
)

type AttendanceHandler struct {
	svc domain.AttendanceService
}

func NewAttendanceHandler(svc domain.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// CheckInHandler registers a check-in at the current instant.
func (h *AttendanceHandler) CheckInHandler(c echo.Context) error {
	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Employee id is required", err)
	}

	record, err := h.svc.AddRecord(c.Request().Context(), req.EmployeeID)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to register check-in", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Check-in registered successfully", record)
}

// RecordsHandler returns an employee's records, newest first.
func (h *AttendanceHandler) RecordsHandler(c echo.Context) error {
	records, err := h.svc.EmployeeRecords(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to list records", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Records listed successfully", records)
}

// FaultsHandler returns the 30-day fault count and its severity tier.
func (h *AttendanceHandler) FaultsHandler(c echo.Context) error {
	id := c.Param("id")
	count, err := h.svc.FaultCount(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to compute fault count", err)
	}

	resp := FaultResponse{
		EmployeeID: id,
		Count:      count,
		Tier:       domain.TierFor(count).String(),
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Fault count computed successfully", resp)
}

// UpdateRecordHandler amends a record's timestamp.
func (h *AttendanceHandler) UpdateRecordHandler(c echo.Context) error {
	var req UpdateRecordRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Timestamp is required", err)
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Timestamp must be RFC 3339", err)
	}

	if err := h.svc.UpdateRecord(c.Request().Context(), c.Param("id"), ts); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return serviceutils.ResponseError(c, http.StatusNotFound, "Record not found", err)
		}
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to update record", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Record updated successfully", nil)
}
