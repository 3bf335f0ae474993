package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/asistenciapp/backend/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	rows := BuildRows(testEmployee, []domain.AttendanceRecord{
		{ID: "a", EmployeeID: "1", Timestamp: time.Date(2026, 3, 2, 9, 40, 0, 0, time.Local)},
		{ID: "b", EmployeeID: "1", Timestamp: time.Date(2026, 3, 3, 8, 55, 0, 0, time.Local)},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Asistencia")

	header, err := f.GetCellValue("Asistencia", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre", header)

	estado, err := f.GetCellValue("Asistencia", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Retardo", estado)

	hora, err := f.GetCellValue("Asistencia", "C3")
	require.NoError(t, err)
	assert.Equal(t, "08:55", hora)
}
