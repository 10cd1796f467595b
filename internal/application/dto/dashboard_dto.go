package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// DashboardDTO respuesta de GET /admin/dashboard.
// KPIs del mes en curso (día 1 – hoy) más conteos de trabajadores.
type DashboardDTO struct {
	Users    entity.UserStats          `json:"users"`
	Overview entity.FinancialOverview  `json:"overview"`
	Margin   entity.ProfitMarginReport `json:"margin"`

	// (revenue - cost) / revenue * 100, a dos decimales
	MarginPct decimal.Decimal `json:"marginPct"`

	// Metadatos del período
	DateLabel string `json:"dateLabel"` // ej: "March 2024"
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
