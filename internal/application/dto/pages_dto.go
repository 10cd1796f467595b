package dto

import "github.com/jhoicas/stitchdesk/internal/domain/entity"

// Vistas de cada página. Una carga trae todo en paralelo; si una parte
// falla no se muestra nada.

// WorkersPageDTO trabajadores + conteos.
type WorkersPageDTO struct {
	Users []entity.User     `json:"users"`
	Stats *entity.UserStats `json:"stats"`
}

// AttendancePageDTO asistencia del día + resumen + trabajadores del filtro.
type AttendancePageDTO struct {
	Records []entity.AttendanceRecord `json:"records"`
	Summary *entity.AttendanceSummary `json:"summary"`
	Workers []entity.User             `json:"workers"`
}

// FinancePageDTO gastos de un tipo.
type FinancePageDTO struct {
	Type       entity.ExpenseType   `json:"type"`
	Expenses   []entity.Expense     `json:"expenses"`
	Stats      *entity.ExpenseStats `json:"stats"`
	Categories []string             `json:"categories"`
}

// ExportsPageDTO exportaciones + totales + empresas para el filtro.
type ExportsPageDTO struct {
	Records      []entity.ExportRecord      `json:"records"`
	Stats        *entity.ExportStats        `json:"stats"`
	Companies    []string                   `json:"companies"`
	Descriptions []entity.ExportDescription `json:"descriptions"`
}

// ReportsPageDTO analítica general del rango.
type ReportsPageDTO struct {
	Revenue      *entity.RevenueReport      `json:"revenue"`
	Overview     *entity.FinancialOverview  `json:"overview"`
	Productivity *entity.ProductivityReport `json:"productivity"`
	ProfitMargin *entity.ProfitMarginReport `json:"profitMargin"`
}

// NavItem entrada del menú lateral.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavDTO menú según el rol de la sesión.
type NavDTO struct {
	User  *entity.User `json:"user"`
	Role  string       `json:"role"`
	Home  string       `json:"home"`
	Items []NavItem    `json:"items"`
}

// SheetSummary resumen de una hoja de un libro exportado.
type SheetSummary struct {
	Name   string   `json:"name"`
	Rows   int      `json:"rows"`
	Header []string `json:"header,omitempty"`
}

// WorkbookSummary hojas de un libro exportado.
type WorkbookSummary struct {
	Sheets []SheetSummary `json:"sheets"`
}

// DataRows filas sin contar la cabecera de cada hoja.
func (s WorkbookSummary) DataRows() int {
	n := 0
	for _, sh := range s.Sheets {
		if sh.Rows > 0 {
			n += sh.Rows - 1
		}
	}
	return n
}

// ProfileDTO perfil del trabajador autenticado.
type ProfileDTO struct {
	User entity.User `json:"user"`
}
