// Package spreadsheet revisa los libros que devuelve el backend antes de
// reenviarlos al navegador.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
)

// XLSXContentType tipo MIME de un libro .xlsx.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Inspector abre libros xlsx con excelize.
type Inspector struct{}

// NewInspector construye el inspector.
func NewInspector() *Inspector { return &Inspector{} }

// IsWorkbook indica si el contenido parece un xlsx (zip con cabecera PK).
func IsWorkbook(contentType string, data []byte) bool {
	if strings.HasPrefix(contentType, XLSXContentType) {
		return true
	}
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

// Inspect lee hojas y filas. Devuelve nil sin error si el contenido no es
// un libro. Un libro que no abre se rechaza como error del servidor.
func (i *Inspector) Inspect(contentType string, data []byte) (*dto.WorkbookSummary, error) {
	if !IsWorkbook(contentType, data) {
		return nil, nil
	}
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %v: %w", err, domain.ErrServer)
	}
	defer func() { _ = file.Close() }()

	names := file.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("libro sin hojas: %w", domain.ErrServer)
	}
	summary := &dto.WorkbookSummary{Sheets: make([]dto.SheetSummary, 0, len(names))}
	for _, name := range names {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %v: %w", name, err, domain.ErrServer)
		}
		sheet := dto.SheetSummary{Name: name, Rows: len(rows)}
		if len(rows) > 0 {
			for _, cell := range rows[0] {
				sheet.Header = append(sheet.Header, strings.TrimSpace(cell))
			}
		}
		summary.Sheets = append(summary.Sheets, sheet)
	}
	return summary, nil
}
