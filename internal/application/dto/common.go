package dto

import "github.com/jhoicas/stitchdesk/internal/domain/entity"

// ErrorResponse cuerpo de error HTTP del shell.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RedirectResponse navegación forzada: guarda de rol o sesión expirada.
type RedirectResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionDTO estado de la sesión del navegador tras login o en GET /login.
type SessionDTO struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
	Role          string       `json:"role,omitempty"`
	Home          string       `json:"home,omitempty"`
}

// PageResponse vista de una página de listado: estado de carga, datos,
// banners y el filtro con el que se cargó. FormError se usa cuando una
// mutación falla: la lista no cambia y el formulario sigue abierto.
type PageResponse struct {
	State     string `json:"state"`
	Seq       uint64 `json:"seq"`
	Filter    any    `json:"filter"`
	Data      any    `json:"data"`
	Error     string `json:"error,omitempty"`
	Success   string `json:"success,omitempty"`
	FormError string `json:"formError,omitempty"`
	Form      any    `json:"form,omitempty"`
}

// DateMode modo de filtro por fecha. Son excluyentes.
type DateMode string

const (
	DateModeSingle DateMode = "single"
	DateModeRange  DateMode = "range"
)

// DateFilter filtro de fecha única o de rango. Solo los campos del modo
// activo participan en la consulta.
type DateFilter struct {
	Mode      DateMode    `json:"mode"`
	Date      entity.Date `json:"date"`
	StartDate entity.Date `json:"startDate"`
	EndDate   entity.Date `json:"endDate"`
}

// SingleDay filtro de un solo día.
func SingleDay(d entity.Date) DateFilter {
	return DateFilter{Mode: DateModeSingle, Date: d}
}

// Between filtro de rango [start, end].
func Between(start, end entity.Date) DateFilter {
	return DateFilter{Mode: DateModeRange, StartDate: start, EndDate: end}
}

// SwitchMode cambia de modo y descarta los valores del modo anterior.
func (f *DateFilter) SwitchMode(m DateMode) {
	if f.Mode == m {
		return
	}
	f.Mode = m
	f.Date = entity.Date{}
	f.StartDate = entity.Date{}
	f.EndDate = entity.Date{}
}

// Bounds devuelve startDate/endDate a enviar al backend según el modo activo.
// Un día único se envía como rango de un día.
func (f DateFilter) Bounds() (start, end entity.Date) {
	switch f.Mode {
	case DateModeSingle:
		return f.Date, f.Date
	case DateModeRange:
		return f.StartDate, f.EndDate
	default:
		return entity.Date{}, entity.Date{}
	}
}

// WorkFilter filtros de la página de trabajo diario. UserID nil = todos.
type WorkFilter struct {
	Dates  DateFilter `json:"dates"`
	UserID *int64     `json:"userId,omitempty"`
}

// AttendanceFilter asistencia de un día, opcionalmente de un trabajador.
type AttendanceFilter struct {
	Date   entity.Date `json:"date"`
	UserID *int64      `json:"userId,omitempty"`
}

// ExpenseFilter filtros de gastos. Category vacío = todas.
type ExpenseFilter struct {
	Type     entity.ExpenseType `json:"type"`
	Dates    DateFilter         `json:"dates"`
	Category string             `json:"category,omitempty"`
}

// ExportFilter filtros de exportaciones. CompanyName vacío = todas.
type ExportFilter struct {
	Dates       DateFilter `json:"dates"`
	CompanyName string     `json:"companyName,omitempty"`
}

// ReportFilter rango y trabajador opcional para analítica.
type ReportFilter struct {
	Dates  DateFilter `json:"dates"`
	UserID *int64     `json:"userId,omitempty"`
}
