// Package excel serializa el Workbook del reporte diario a XLSX con Excelize.
package excel

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"

	appexport "github.com/jhoicas/comercio-dashboard/internal/application/export"
)

// WorkbookWriter implementa export.WorkbookWriter usando Excelize.
type WorkbookWriter struct{}

// NewWorkbookWriter construye el serializador.
func NewWorkbookWriter() *WorkbookWriter { return &WorkbookWriter{} }

// Write genera el archivo XLSX en memoria. Cada hoja del Workbook se vuelve
// una worksheet; la hoja por defecto de Excelize se descarta.
func (w *WorkbookWriter) Write(wb appexport.Workbook) ([]byte, error) {
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("excel: workbook sin hojas")
	}

	f := excelize.NewFile()
	firstIndex := 0
	for i, sheet := range wb.Sheets {
		index := f.NewSheet(sheet.Name)
		if i == 0 {
			firstIndex = index
		}
		for col, title := range sheet.Header {
			f.SetCellValue(sheet.Name, axis(col, 1), title)
		}
		for r, row := range sheet.Rows {
			for col, value := range row {
				f.SetCellValue(sheet.Name, axis(col, r+2), value)
			}
		}
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(firstIndex)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// axis convierte (columna 0-based, fila 1-based) en coordenada tipo "B3".
func axis(col, row int) string {
	return excelize.ToAlphaString(col) + strconv.Itoa(row)
}
