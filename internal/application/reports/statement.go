package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// Statement constancia de salario de un trabajador en un período.
type Statement struct {
	Worker entity.User
	Start  entity.Date
	End    entity.Date
	Report entity.SalaryReport
	Months []MonthTotal
	Issued time.Time
}

// Period rango legible del filtro.
func (s Statement) Period() string {
	switch {
	case s.Start.IsZero() && s.End.IsZero():
		return "All dates"
	case s.Start.Equal(s.End.Time):
		return s.Start.String()
	default:
		return s.Start.String() + " to " + s.End.String()
	}
}

// FileName nombre sugerido del PDF.
func (s Statement) FileName() string {
	return fmt.Sprintf("salary-%d-%s.pdf", s.Worker.ID, s.Issued.Format("20060102"))
}

// StatementRenderer convierte la constancia en un documento.
type StatementRenderer interface {
	RenderStatement(ctx context.Context, s Statement) ([]byte, error)
}

// StatementUseCase arma la constancia con datos del backend y la renderiza.
type StatementUseCase struct {
	analytics repository.AnalyticsRepository
	users     repository.UserRepository
	renderer  StatementRenderer
	now       func() time.Time
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(analytics repository.AnalyticsRepository, users repository.UserRepository, renderer StatementRenderer) *StatementUseCase {
	return &StatementUseCase{analytics: analytics, users: users, renderer: renderer, now: time.Now}
}

// ForWorker constancia de un trabajador elegido por el administrador.
func (uc *StatementUseCase) ForWorker(ctx context.Context, f dto.ReportFilter) ([]byte, Statement, error) {
	if f.UserID == nil {
		return nil, Statement{}, fmt.Errorf("%w: choose a worker", domain.ErrInvalidInput)
	}
	id := *f.UserID
	return uc.build(ctx, f, func(ctx context.Context) (*entity.User, error) {
		return uc.users.GetByID(ctx, id)
	})
}

// Mine constancia del usuario de la sesión.
func (uc *StatementUseCase) Mine(ctx context.Context, userID int64, dates dto.DateFilter) ([]byte, Statement, error) {
	return uc.build(ctx, dto.ReportFilter{Dates: dates, UserID: &userID}, uc.users.Me)
}

func (uc *StatementUseCase) build(ctx context.Context, f dto.ReportFilter, worker func(context.Context) (*entity.User, error)) ([]byte, Statement, error) {
	var (
		user   *entity.User
		report *entity.SalaryReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := worker(gctx)
		user = u
		return err
	})
	g.Go(func() error {
		r, err := uc.analytics.Salary(gctx, f)
		report = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, Statement{}, err
	}
	if user == nil || report == nil {
		return nil, Statement{}, domain.ErrNotFound
	}

	st := Statement{
		Worker: *user,
		Report: *report,
		Months: GroupByMonth(report.Rows),
		Issued: uc.now(),
	}
	st.Start, st.End = f.Dates.Bounds()
	doc, err := uc.renderer.RenderStatement(ctx, st)
	if err != nil {
		return nil, Statement{}, fmt.Errorf("render statement: %w", err)
	}
	return doc, st, nil
}
