package backend

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

var (
	_ repository.AuthRepository = (*AuthRepo)(nil)
	_ repository.UserRepository = (*UserRepo)(nil)
)

// AuthRepo endpoints públicos; usa una conexión anónima.
type AuthRepo struct {
	conn *Conn
}

// NewAuthRepository construye el adaptador de autenticación.
func NewAuthRepository(conn *Conn) *AuthRepo {
	return &AuthRepo{conn: conn}
}

// Login POST /auth/login.
func (r *AuthRepo) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := r.conn.Post(ctx, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup POST /auth/signup.
func (r *AuthRepo) Signup(ctx context.Context, in dto.SignupRequest) error {
	return r.conn.Post(ctx, "/auth/signup", in, nil)
}

// UserRepo trabajadores.
type UserRepo struct {
	conn *Conn
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(conn *Conn) *UserRepo {
	return &UserRepo{conn: conn}
}

func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := r.conn.Get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepo) Stats(ctx context.Context) (*entity.UserStats, error) {
	var out entity.UserStats
	if err := r.conn.Get(ctx, "/users/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me perfil del usuario autenticado.
func (r *UserRepo) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := r.conn.Get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var out entity.User
	if err := r.conn.Get(ctx, idPath("/users", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepo) Create(ctx context.Context, in dto.CreateUserRequest) error {
	return r.conn.Post(ctx, "/users", in, nil)
}

func (r *UserRepo) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	return r.conn.Put(ctx, idPath("/users", id), in, nil)
}

func (r *UserRepo) ChangePassword(ctx context.Context, id int64, in dto.ChangePasswordRequest) error {
	return r.conn.Put(ctx, idPath("/users", id)+"/change-password", in, nil)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return r.conn.Delete(ctx, idPath("/users", id))
}
