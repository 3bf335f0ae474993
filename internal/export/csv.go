package export

import (
	"encoding/csv"
	"io"

	"github.com/asistenciapp/backend/internal/domain"
)

// Column order is fixed; downstream spreadsheets depend on it.
var csvHeader = []string{"Nombre", "Fecha", "Hora", "Estado"}

const (
	statusLate   = "Retardo"
	statusOnTime = "A tiempo"
)

// BuildRows derives the export rows for one employee's records. Everything
// comes from the employee, the records and the lateness rule; no other
// state is involved.
func BuildRows(employee domain.Employee, records []domain.AttendanceRecord) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(records))
	for _, r := range records {
		estado := statusOnTime
		if domain.IsLate(r.Timestamp) {
			estado = statusLate
		}
		rows = append(rows, domain.ExportRow{
			Nombre: employee.Name,
			Fecha:  FormatDate(r.Timestamp),
			Hora:   FormatTime(r.Timestamp),
			Estado: estado,
		})
	}
	return rows
}

// WriteCSV writes the rows with a UTF-8 BOM so Excel opens the accented
// names correctly.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Nombre, row.Fecha, row.Hora, row.Estado}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
