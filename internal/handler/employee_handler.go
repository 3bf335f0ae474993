package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/logger"
	"github.com/asistenciapp/backend/internal/service/serviceutils"
)

// EmployeeSearcher resolves a free-text name query to roster ids. It is
// optional; without one the handler filters in memory.
type EmployeeSearcher interface {
	SearchByName(ctx context.Context, name string) ([]string, error)
}

type EmployeeHandler struct {
	roster     domain.RosterService
	attendance domain.AttendanceService
	searcher   EmployeeSearcher
}

// NewEmployeeHandler creates the roster handler. searcher may be nil.
func NewEmployeeHandler(roster domain.RosterService, attendance domain.AttendanceService, searcher EmployeeSearcher) *EmployeeHandler {
	return &EmployeeHandler{roster: roster, attendance: attendance, searcher: searcher}
}

// ListHandler returns the roster annotated with fault counts, sorted by
// fault count descending so repeat offenders surface first. An optional
// ?q= filters by employee name.
func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	ctx := c.Request().Context()

	employees, err := h.roster.Employees(ctx)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to list employees", err)
	}

	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		employees = h.filterByName(ctx, employees, q)
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		count, err := h.attendance.FaultCount(ctx, e.ID)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to compute fault count", err)
		}
		resp = append(resp, EmployeeResponse{
			ID:             e.ID,
			Name:           e.Name,
			EmployeeNumber: e.EmployeeNumber,
			Department:     e.Department,
			Avatar:         e.Avatar,
			FaultCount:     count,
			FaultTier:      domain.TierFor(count).String(),
		})
	}

	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].FaultCount > resp[j].FaultCount
	})

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", resp)
}

func (h *EmployeeHandler) filterByName(ctx context.Context, employees []domain.Employee, q string) []domain.Employee {
	if h.searcher != nil {
		ids, err := h.searcher.SearchByName(ctx, q)
		if err == nil {
			matched := make(map[string]bool, len(ids))
			for _, id := range ids {
				matched[id] = true
			}
			out := make([]domain.Employee, 0, len(ids))
			for _, e := range employees {
				if matched[e.ID] {
					out = append(out, e)
				}
			}
			return out
		}
		logger.WarnLog(ctx, "employee search index unavailable, falling back to in-memory filter: %v", err)
	}

	needle := strings.ToLower(q)
	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// CreateHandler adds an employee to the roster.
func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Name and department are required", err)
	}

	employee, err := h.roster.AddEmployee(c.Request().Context(), req.Name, req.Department, req.EmployeeNumber)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to create employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee created successfully", employee)
}
