// Package attendance asistencia diaria de trabajadores.
package attendance

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// UseCase página de asistencia.
type UseCase struct {
	attendance repository.AttendanceRepository
	users      repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(attendance repository.AttendanceRepository, users repository.UserRepository) *UseCase {
	return &UseCase{attendance: attendance, users: users}
}

// Load registros del día, resumen de ese día y lista de trabajadores.
func (uc *UseCase) Load(ctx context.Context, f dto.AttendanceFilter) (dto.AttendancePageDTO, error) {
	var page dto.AttendancePageDTO
	summaryFilter := dto.ReportFilter{UserID: f.UserID}
	if !f.Date.IsZero() {
		summaryFilter.Dates = dto.SingleDay(f.Date)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := uc.attendance.ListByDate(gctx, f)
		page.Records = records
		return err
	})
	g.Go(func() error {
		summary, err := uc.attendance.Summary(gctx, summaryFilter)
		page.Summary = summary
		return err
	})
	g.Go(func() error {
		users, err := uc.users.List(gctx)
		page.Workers = users
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.AttendancePageDTO{}, err
	}
	return page, nil
}

func (uc *UseCase) Create(ctx context.Context, in dto.AttendanceRequest) error {
	if in.UserID <= 0 || in.Date.IsZero() {
		return fmt.Errorf("%w: worker and date are required", domain.ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.attendance.Create(ctx, in)
}

func (uc *UseCase) UpdateStatus(ctx context.Context, id int64, in dto.AttendanceStatusRequest) error {
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.attendance.UpdateStatus(ctx, id, in)
}

func (uc *UseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	return uc.attendance.Delete(ctx, id)
}
