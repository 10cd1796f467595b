// Package portal páginas del trabajador: perfil, cambio de contraseña y
// salario propio.
package portal

import (
	"context"
	"fmt"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// UseCase portal del trabajador. userID es el de la sesión; nunca viene
// del navegador.
type UseCase struct {
	users     repository.UserRepository
	analytics repository.AnalyticsRepository
	userID    int64
}

// NewUseCase construye el caso de uso para el usuario de la sesión.
func NewUseCase(users repository.UserRepository, analytics repository.AnalyticsRepository, userID int64) *UseCase {
	return &UseCase{users: users, analytics: analytics, userID: userID}
}

// Profile GET /users/me.
func (uc *UseCase) Profile(ctx context.Context, _ struct{}) (dto.ProfileDTO, error) {
	me, err := uc.users.Me(ctx)
	if err != nil {
		return dto.ProfileDTO{}, err
	}
	return dto.ProfileDTO{User: *me}, nil
}

// ChangePassword cambio de la propia contraseña; exige la actual.
func (uc *UseCase) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return fmt.Errorf("%w: current and new password are required", domain.ErrInvalidInput)
	}
	return uc.users.ChangePassword(ctx, uc.userID, in)
}

// Salary salario propio en el rango con desglose mensual.
func (uc *UseCase) Salary(ctx context.Context, dates dto.DateFilter) (reports.SalaryPage, error) {
	id := uc.userID
	report, err := uc.analytics.Salary(ctx, dto.ReportFilter{Dates: dates, UserID: &id})
	if err != nil {
		return reports.SalaryPage{}, err
	}
	return reports.SalaryPage{Report: report, Months: reports.GroupByMonth(report.Rows)}, nil
}
