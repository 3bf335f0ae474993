package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistenciapp/backend/internal/domain"
)

var testEmployee = domain.Employee{
	ID:             "1",
	Name:           "Carlos Rodríguez",
	EmployeeNumber: "EMP001",
	Department:     "Ventas",
}

func TestBuildRows(t *testing.T) {
	records := []domain.AttendanceRecord{
		{ID: "a", EmployeeID: "1", Timestamp: time.Date(2026, 3, 2, 9, 40, 0, 0, time.Local)},
		{ID: "b", EmployeeID: "1", Timestamp: time.Date(2026, 3, 3, 8, 55, 0, 0, time.Local)},
	}

	rows := BuildRows(testEmployee, records)
	require.Len(t, rows, 2)

	assert.Equal(t, "Carlos Rodríguez", rows[0].Nombre)
	assert.Equal(t, "lunes, 2 de marzo de 2026", rows[0].Fecha)
	assert.Equal(t, "09:40", rows[0].Hora)
	assert.Equal(t, "Retardo", rows[0].Estado)

	assert.Equal(t, "martes, 3 de marzo de 2026", rows[1].Fecha)
	assert.Equal(t, "08:55", rows[1].Hora)
	assert.Equal(t, "A tiempo", rows[1].Estado)
}

func TestWriteCSV(t *testing.T) {
	rows := BuildRows(testEmployee, []domain.AttendanceRecord{
		{ID: "a", EmployeeID: "1", Timestamp: time.Date(2026, 3, 2, 9, 40, 0, 0, time.Local)},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "missing UTF-8 BOM")

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF")))
	all, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"Nombre", "Fecha", "Hora", "Estado"}, all[0])
	assert.Equal(t, []string{"Carlos Rodríguez", "lunes, 2 de marzo de 2026", "09:40", "Retardo"}, all[1])
}

func TestWriteCSVEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\uFEFF")))
	all, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 1) // header only
}
