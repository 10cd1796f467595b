// Package session mantiene la identidad autenticada del shell: el usuario y el
// token bearer, siempre juntos. Es el único lugar donde se normaliza el rol.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/pkg/jwt"
	"github.com/jhoicas/stitchdesk/pkg/logger"
)

// Claves persistidas; equivalen a las dos entradas de local storage.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Storage almacenamiento clave/valor de la sesión (memoria, archivo o Redis).
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// State foto inmutable de la sesión. Los flags derivados se calculan al leer
// a partir del rol normalizado, nunca se guardan aparte.
type State struct {
	User    *entity.User
	Token   string
	Role    entity.Role
	Loading bool
}

// IsAuthenticated hay usuario (y por invariante, token).
func (s State) IsAuthenticated() bool { return s.User != nil }

// IsAdmin rol admin u owner.
func (s State) IsAdmin() bool { return s.IsAuthenticated() && s.Role == entity.RoleAdmin }

// IsWorker rol worker.
func (s State) IsWorker() bool { return s.IsAuthenticated() && s.Role == entity.RoleWorker }

// Store dueño único de la sesión de un cliente.
type Store struct {
	storage Storage
	log     *logger.Logger

	mu       sync.RWMutex
	user     *entity.User
	token    string
	role     entity.Role
	restored bool
}

// NewStore construye el store. Queda en Loading hasta el primer Restore.
func NewStore(storage Storage, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{storage: storage, log: log}
}

// Restore lee usuario y token persistidos. Solo consulta el storage, nunca el
// backend. Datos corruptos o incompletos se tratan como sesión ausente y se
// limpian. Llamadas posteriores devuelven el estado en memoria.
func (s *Store) Restore(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return s.stateLocked()
	}
	s.restored = true

	rawUser, okUser, errUser := s.storage.Get(ctx, KeyUser)
	token, okToken, errToken := s.storage.Get(ctx, KeyToken)
	if errUser != nil || errToken != nil {
		s.log.Warn().AnErr("user_err", errUser).AnErr("token_err", errToken).Msg("sesión: no se pudo leer el storage")
		return s.stateLocked()
	}
	if !okUser && !okToken {
		return s.stateLocked()
	}
	if !okUser || !okToken || token == "" {
		s.discardLocked(ctx, "sesión incompleta")
		return s.stateLocked()
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.discardLocked(ctx, "usuario persistido corrupto")
		return s.stateLocked()
	}
	s.setLocked(&user, token)
	return s.stateLocked()
}

// Login guarda usuario y token juntos. No navega: eso es del llamador.
// Si la persistencia falla se deshace todo y la sesión en memoria no cambia.
func (s *Store) Login(ctx context.Context, user entity.User, token string) error {
	if token == "" {
		return fmt.Errorf("sesión: token vacío")
	}
	if user.Role == "" || user.ID == 0 {
		// Usuario incompleto en la respuesta: completar con los claims del token.
		if claims, err := jwt.Decode(token); err == nil {
			if user.Role == "" {
				user.Role = claims.Role
			}
			if user.ID == 0 {
				user.ID = claims.UserID
			}
			if user.Email == "" {
				user.Email = claims.Email
			}
		}
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("sesión: serializar usuario: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("sesión: guardar usuario: %w", err)
	}
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		_ = s.storage.Delete(ctx, KeyUser, KeyToken)
		return fmt.Errorf("sesión: guardar token: %w", err)
	}
	s.setLocked(&user, token)
	s.restored = true
	return nil
}

// Logout borra la sesión en memoria y persistida. No navega.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.restored = true
	if err := s.storage.Delete(ctx, KeyUser, KeyToken); err != nil {
		return fmt.Errorf("sesión: borrar storage: %w", err)
	}
	return nil
}

// Expire limpia la sesión tras un 401 del backend. Devuelve true solo si
// había una sesión que limpiar, así varias respuestas 401 concurrentes
// disparan una sola redirección.
func (s *Store) Expire(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	s.log.Info().Int64("user_id", s.user.ID).Msg("sesión expirada por el backend")
	s.clearLocked()
	if err := s.storage.Delete(ctx, KeyUser, KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("sesión: no se pudo borrar el storage")
	}
	return true
}

// State foto actual.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Token bearer actual o "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) stateLocked() State {
	st := State{Token: s.token, Role: s.role, Loading: !s.restored}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Store) setLocked(user *entity.User, token string) {
	s.user = user
	s.token = token
	s.role = entity.ParseRole(user.Role)
}

func (s *Store) clearLocked() {
	s.user = nil
	s.token = ""
	s.role = entity.RoleUnknown
}

func (s *Store) discardLocked(ctx context.Context, reason string) {
	s.log.Warn().Str("reason", reason).Msg("sesión persistida descartada")
	s.clearLocked()
	if err := s.storage.Delete(ctx, KeyUser, KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("sesión: no se pudo borrar el storage")
	}
}
