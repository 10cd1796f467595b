// Package workers gestión de trabajadores (solo admin).
package workers

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// UseCase listado y mutaciones de trabajadores.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Load lista y conteos en paralelo.
func (uc *UseCase) Load(ctx context.Context, _ struct{}) (dto.WorkersPageDTO, error) {
	var page dto.WorkersPageDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := uc.users.List(gctx)
		page.Users = users
		return err
	})
	g.Go(func() error {
		stats, err := uc.users.Stats(gctx)
		page.Stats = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.WorkersPageDTO{}, err
	}
	return page, nil
}

// Create alta de trabajador. El rol por defecto es worker.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateUserRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}
	if in.Role == "" {
		in.Role = "worker"
	}
	return uc.users.Create(ctx, in)
}

func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	return uc.users.Update(ctx, id, in)
}

// ChangePassword cambio de contraseña de cualquier trabajador.
func (uc *UseCase) ChangePassword(ctx context.Context, id int64, in dto.ChangePasswordRequest) error {
	if in.NewPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrInvalidInput)
	}
	return uc.users.ChangePassword(ctx, id, in)
}

// Delete requiere confirmación explícita antes de llamar al backend.
func (uc *UseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	return uc.users.Delete(ctx, id)
}

