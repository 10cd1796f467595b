package backend

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// ReportTypes reportes que el backend sabe exportar.
var ReportTypes = []string{"salary", "revenue", "financial-overview", "productivity", "profit-margin"}

// AnalyticsRepo consultas de analítica (solo lectura).
type AnalyticsRepo struct {
	conn *Conn
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(conn *Conn) *AnalyticsRepo {
	return &AnalyticsRepo{conn: conn}
}

func reportQuery(f dto.ReportFilter) *query {
	return newQuery().dates(f.Dates).id("userId", f.UserID)
}

func (r *AnalyticsRepo) get(ctx context.Context, name string, f dto.ReportFilter, out any) error {
	return r.conn.Get(ctx, "/analytics/"+name, reportQuery(f).values(), out)
}

func (r *AnalyticsRepo) Salary(ctx context.Context, f dto.ReportFilter) (*entity.SalaryReport, error) {
	var out entity.SalaryReport
	if err := r.get(ctx, "salary", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepo) Revenue(ctx context.Context, f dto.ReportFilter) (*entity.RevenueReport, error) {
	var out entity.RevenueReport
	if err := r.get(ctx, "revenue", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepo) FinancialOverview(ctx context.Context, f dto.ReportFilter) (*entity.FinancialOverview, error) {
	var out entity.FinancialOverview
	if err := r.get(ctx, "financial-overview", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepo) Productivity(ctx context.Context, f dto.ReportFilter) (*entity.ProductivityReport, error) {
	var out entity.ProductivityReport
	if err := r.get(ctx, "productivity", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepo) ProfitMargin(ctx context.Context, f dto.ReportFilter) (*entity.ProfitMarginReport, error) {
	var out entity.ProfitMarginReport
	if err := r.get(ctx, "profit-margin", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export descarga el archivo del reporte pedido.
func (r *AnalyticsRepo) Export(ctx context.Context, reportType string, f dto.ReportFilter) (*repository.ReportFile, error) {
	if !slices.Contains(ReportTypes, reportType) {
		return nil, fmt.Errorf("%w: report type %q", domain.ErrInvalidInput, reportType)
	}
	q := reportQuery(f).str("type", reportType)
	blob, err := r.conn.GetBlob(ctx, "/analytics/export", q.values())
	if err != nil {
		return nil, err
	}
	return &repository.ReportFile{ContentType: blob.ContentType, FileName: blob.FileName, Data: blob.Data}, nil
}
