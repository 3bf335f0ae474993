package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/asistenciapp/backend/internal/domain"
)

const sheetName = "Asistencia"

// WriteXLSX writes the same rows as the CSV export as a spreadsheet with a
// header row and sensible column widths.
func WriteXLSX(w io.Writer, rows []domain.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		values := []string{row.Nombre, row.Fecha, row.Hora, row.Estado}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 34); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "D", 12); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
