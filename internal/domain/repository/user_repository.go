package repository

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// AuthRepository puerto hacia los endpoints públicos de autenticación.
type AuthRepository interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Signup(ctx context.Context, in dto.SignupRequest) error
}

// UserRepository puerto de trabajadores/usuarios (DIP). La persistencia
// real vive en el backend; las mutaciones no devuelven el recurso porque la
// vista siempre recarga la lista completa.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Stats(ctx context.Context) (*entity.UserStats, error)
	Me(ctx context.Context) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, in dto.CreateUserRequest) error
	Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error
	ChangePassword(ctx context.Context, id int64, in dto.ChangePasswordRequest) error
	Delete(ctx context.Context, id int64) error
}
