package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/export"
	"github.com/asistenciapp/backend/internal/service/serviceutils"
)

type ExportHandler struct {
	roster     domain.RosterService
	attendance domain.AttendanceService
	actaTpl    export.ActaTemplate
}

func NewExportHandler(roster domain.RosterService, attendance domain.AttendanceService, actaTpl export.ActaTemplate) *ExportHandler {
	return &ExportHandler{roster: roster, attendance: attendance, actaTpl: actaTpl}
}

func (h *ExportHandler) employeeByID(c echo.Context, id string) (*domain.Employee, error) {
	employees, err := h.roster.Employees(c.Request().Context())
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

// CSVHandler downloads one employee's attendance history as CSV.
func (h *ExportHandler) CSVHandler(c echo.Context) error {
	employee, rows, err := h.exportRows(c)
	if err != nil {
		return h.exportError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate CSV", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="faltas-%s.csv"`, exportFileName(employee.Name)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// XLSXHandler downloads the same history as a spreadsheet.
func (h *ExportHandler) XLSXHandler(c echo.Context) error {
	employee, rows, err := h.exportRows(c)
	if err != nil {
		return h.exportError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rows); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate spreadsheet", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="faltas-%s.xlsx"`, exportFileName(employee.Name)))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) exportRows(c echo.Context) (*domain.Employee, []domain.ExportRow, error) {
	employee, err := h.employeeByID(c, c.Param("id"))
	if err != nil {
		return nil, nil, err
	}
	records, err := h.attendance.EmployeeRecords(c.Request().Context(), employee.ID)
	if err != nil {
		return nil, nil, err
	}
	return employee, export.BuildRows(*employee, records), nil
}

func (h *ExportHandler) exportError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Employee not found", err)
	}
	return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to export records", err)
}

// ActaHandler renders the printable acta administrativa for one record.
func (h *ExportHandler) ActaHandler(c echo.Context) error {
	recordID := c.Param("id")

	// The acta needs the record and its employee; the record log carries
	// no index, so scan it the same way every other query does.
	employees, err := h.roster.Employees(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to load roster", err)
	}

	for _, e := range employees {
		records, err := h.attendance.EmployeeRecords(c.Request().Context(), e.ID)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to load records", err)
		}
		for _, r := range records {
			if r.ID == recordID {
				doc := export.RenderActa(h.actaTpl, e, r, time.Now())
				return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
			}
		}
	}

	return serviceutils.ResponseError(c, http.StatusNotFound, "Record not found", domain.ErrRecordNotFound)
}

func exportFileName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
