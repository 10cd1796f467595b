package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// SalaryPage reporte de salario con desglose mensual.
type SalaryPage struct {
	Report *entity.SalaryReport `json:"report"`
	Months []MonthTotal         `json:"months"`
}

// Download archivo a reenviar al navegador. Summary solo está presente
// cuando el archivo es un libro xlsx.
type Download struct {
	File    *repository.ReportFile
	Summary *dto.WorkbookSummary
}

// WorkbookInspector abre un libro exportado. Devuelve nil si el contenido
// no es un libro.
type WorkbookInspector interface {
	Inspect(contentType string, data []byte) (*dto.WorkbookSummary, error)
}

// UseCase páginas de analítica.
type UseCase struct {
	analytics repository.AnalyticsRepository
	inspector WorkbookInspector
}

// NewUseCase construye el caso de uso.
func NewUseCase(analytics repository.AnalyticsRepository, inspector WorkbookInspector) *UseCase {
	return &UseCase{analytics: analytics, inspector: inspector}
}

// Load ingresos, resumen financiero, productividad y margen del rango.
func (uc *UseCase) Load(ctx context.Context, f dto.ReportFilter) (dto.ReportsPageDTO, error) {
	var page dto.ReportsPageDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.analytics.Revenue(gctx, f)
		page.Revenue = r
		return err
	})
	g.Go(func() error {
		r, err := uc.analytics.FinancialOverview(gctx, f)
		page.Overview = r
		return err
	})
	g.Go(func() error {
		r, err := uc.analytics.Productivity(gctx, f)
		page.Productivity = r
		return err
	})
	g.Go(func() error {
		r, err := uc.analytics.ProfitMargin(gctx, f)
		page.ProfitMargin = r
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.ReportsPageDTO{}, err
	}
	return page, nil
}

// Salary reporte de salario y su desglose por mes calendario.
func (uc *UseCase) Salary(ctx context.Context, f dto.ReportFilter) (SalaryPage, error) {
	report, err := uc.analytics.Salary(ctx, f)
	if err != nil {
		return SalaryPage{}, err
	}
	return SalaryPage{Report: report, Months: GroupByMonth(report.Rows)}, nil
}

// Export descarga el reporte; si es un libro lo abre para validar que se
// puede leer antes de entregarlo.
func (uc *UseCase) Export(ctx context.Context, reportType string, f dto.ReportFilter) (*Download, error) {
	file, err := uc.analytics.Export(ctx, reportType, f)
	if err != nil {
		return nil, err
	}
	dl := &Download{File: file}
	if uc.inspector == nil {
		return dl, nil
	}
	summary, err := uc.inspector.Inspect(file.ContentType, file.Data)
	if err != nil {
		return nil, err
	}
	dl.Summary = summary
	return dl, nil
}
