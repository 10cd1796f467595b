package repository

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// ReportFile archivo binario devuelto por el endpoint de exportación.
type ReportFile struct {
	ContentType string
	FileName    string
	Data        []byte
}

// AnalyticsRepository consultas read-only de analítica. Todo se calcula en
// el servidor; el shell solo reacomoda los datos para mostrarlos.
type AnalyticsRepository interface {
	Salary(ctx context.Context, f dto.ReportFilter) (*entity.SalaryReport, error)
	Revenue(ctx context.Context, f dto.ReportFilter) (*entity.RevenueReport, error)
	FinancialOverview(ctx context.Context, f dto.ReportFilter) (*entity.FinancialOverview, error)
	Productivity(ctx context.Context, f dto.ReportFilter) (*entity.ProductivityReport, error)
	ProfitMargin(ctx context.Context, f dto.ReportFilter) (*entity.ProfitMarginReport, error)
	Export(ctx context.Context, reportType string, f dto.ReportFilter) (*ReportFile, error)
}
