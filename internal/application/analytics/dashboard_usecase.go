// Package analytics contiene el caso de uso del Dashboard del administrador.
package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// DashboardUseCase genera el resumen del mes en curso.
//
// Fuente de datos: UserRepository + AnalyticsRepository (consultas read-only).
// Todo lo calcula el backend; aquí solo se arma la vista.
type DashboardUseCase struct {
	usersRepo     repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(usersRepo repository.UserRepository, analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{usersRepo: usersRepo, analyticsRepo: analyticsRepo, now: time.Now}
}

// MonthToDate rango del día 1 del mes actual a hoy.
func MonthToDate(now time.Time) dto.DateFilter {
	start := entity.NewDate(now.Year(), now.Month(), 1)
	today := entity.NewDate(now.Year(), now.Month(), now.Day())
	return dto.Between(start, today)
}

// GetSummary construye el DashboardDTO.
//
// Tres llamadas en paralelo:
//  1. Users.Stats                → conteos de trabajadores
//  2. FinancialOverview(mes)     → ingresos, pagos, gastos
//  3. ProfitMargin(mes)          → margen del período
func (uc *DashboardUseCase) GetSummary(ctx context.Context, _ struct{}) (*dto.DashboardDTO, error) {
	now := uc.now()
	month := MonthToDate(now)
	f := dto.ReportFilter{Dates: month}

	var (
		stats    *entity.UserStats
		overview *entity.FinancialOverview
		margin   *entity.ProfitMarginReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = uc.usersRepo.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview, err = uc.analyticsRepo.FinancialOverview(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		margin, err = uc.analyticsRepo.ProfitMargin(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		Users:     *stats,
		Overview:  *overview,
		Margin:    *margin,
		MarginPct: reports.Margin(margin.Revenue, margin.Cost),
		DateLabel: now.Format("January 2006"),
		StartDate: month.StartDate.String(),
		EndDate:   month.EndDate.String(),
	}
	return out, nil
}
