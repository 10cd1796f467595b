// Package auth login, registro y logout del shell. Las credenciales las
// valida el backend; aquí solo se guarda la sesión resultante.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/guard"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación sobre una sesión de navegador.
type AuthUseCase struct {
	authRepo repository.AuthRepository
	store    *session.Store
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authRepo repository.AuthRepository, store *session.Store) *AuthUseCase {
	return &AuthUseCase{authRepo: authRepo, store: store}
}

// LoginResult estado de sesión tras el login y pantalla a la que ir.
type LoginResult struct {
	State session.State
	Home  string
}

// Login pide el token al backend y persiste usuario + token juntos. Un rol
// que no es admin ni worker no abre sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*LoginResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	resp, err := uc.authRepo.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	token := resp.BearerToken()
	if token == "" {
		return nil, fmt.Errorf("login sin token: %w", domain.ErrServer)
	}
	if err := uc.store.Login(ctx, resp.User, token); err != nil {
		return nil, err
	}
	st := uc.store.State()
	home, ok := guard.HomeFor(st.Role)
	if !ok {
		_ = uc.store.Logout(ctx)
		return nil, domain.ErrForbidden
	}
	return &LoginResult{State: st, Home: home}, nil
}

// Signup alta pública. No abre sesión: el usuario debe hacer login.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}
	return uc.authRepo.Signup(ctx, in)
}

// Logout limpia la sesión. No llama al backend.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.store.Logout(ctx)
}
