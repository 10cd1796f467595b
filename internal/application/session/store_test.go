package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/sessionstore"
	pkgjwt "github.com/jhoicas/stitchdesk/pkg/jwt"
)

func TestStore_RolesAdminYWorker(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"admin", "ADMIN", "owner", "OWNER"} {
		s := session.NewStore(sessionstore.NewMemory(), nil)
		require.NoError(t, s.Login(ctx, entity.User{ID: 1, Name: "Dueño", Role: raw}, "tok"))
		st := s.State()
		assert.True(t, st.IsAdmin(), raw)
		assert.False(t, st.IsWorker(), raw)
	}
	for _, raw := range []string{"worker", "WORKER"} {
		s := session.NewStore(sessionstore.NewMemory(), nil)
		require.NoError(t, s.Login(ctx, entity.User{ID: 2, Name: "Ana", Role: raw}, "tok"))
		st := s.State()
		assert.False(t, st.IsAdmin(), raw)
		assert.True(t, st.IsWorker(), raw)
	}
}

func TestStore_LoginLuegoRestoreEnRecarga(t *testing.T) {
	ctx := context.Background()
	storage := sessionstore.NewMemory()
	user := entity.User{ID: 7, Name: "Ana", Email: "ana@taller.test", Role: "WORKER"}

	require.NoError(t, session.NewStore(storage, nil).Login(ctx, user, "tok-7"))

	// Recarga: nueva Store sobre el mismo storage.
	reloaded := session.NewStore(storage, nil)
	assert.True(t, reloaded.State().Loading, "antes de Restore está cargando")

	st := reloaded.Restore(ctx)
	assert.False(t, st.Loading)
	assert.True(t, st.IsAuthenticated())
	require.NotNil(t, st.User)
	assert.Equal(t, user, *st.User)
	assert.Equal(t, "tok-7", st.Token)
}

func TestStore_LogoutLuegoRestore(t *testing.T) {
	ctx := context.Background()
	storage := sessionstore.NewMemory()
	s := session.NewStore(storage, nil)
	require.NoError(t, s.Login(ctx, entity.User{ID: 1, Role: "admin"}, "tok"))
	require.NoError(t, s.Logout(ctx))

	st := session.NewStore(storage, nil).Restore(ctx)
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Token)

	_, ok, _ := storage.Get(ctx, session.KeyToken)
	assert.False(t, ok, "no queda token residual")
}

func TestStore_RestoreConUsuarioCorrupto(t *testing.T) {
	ctx := context.Background()
	storage := sessionstore.NewMemory()
	require.NoError(t, storage.Set(ctx, session.KeyUser, "{esto no es json"))
	require.NoError(t, storage.Set(ctx, session.KeyToken, "tok"))

	st := session.NewStore(storage, nil).Restore(ctx)
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Token, "nunca medio poblada")
	assert.False(t, st.Loading)

	_, ok, _ := storage.Get(ctx, session.KeyToken)
	assert.False(t, ok, "se limpian ambas claves")
}

func TestStore_RestoreSoloToken(t *testing.T) {
	ctx := context.Background()
	storage := sessionstore.NewMemory()
	require.NoError(t, storage.Set(ctx, session.KeyToken, "tok"))

	st := session.NewStore(storage, nil).Restore(ctx)
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Token)
}

func TestStore_LoginCompletaRolDesdeElToken(t *testing.T) {
	tok, err := pkgjwt.Generate("s", 9, "owner@taller.test", "OWNER", time.Hour)
	require.NoError(t, err)

	s := session.NewStore(sessionstore.NewMemory(), nil)
	require.NoError(t, s.Login(context.Background(), entity.User{Name: "Dueño"}, tok))

	st := s.State()
	assert.True(t, st.IsAdmin())
	assert.Equal(t, int64(9), st.User.ID)
}

type failingStorage struct {
	*sessionstore.Memory
	failKey string
}

func (f failingStorage) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("disco lleno")
	}
	return f.Memory.Set(ctx, key, value)
}

func TestStore_LoginFallidoNoDejaMediaSesion(t *testing.T) {
	ctx := context.Background()
	storage := failingStorage{Memory: sessionstore.NewMemory(), failKey: session.KeyToken}
	s := session.NewStore(storage, nil)

	err := s.Login(ctx, entity.User{ID: 1, Role: "admin"}, "tok")
	require.Error(t, err)
	assert.False(t, s.State().IsAuthenticated())

	_, ok, _ := storage.Get(ctx, session.KeyUser)
	assert.False(t, ok, "el usuario se revierte si el token no se pudo guardar")
}

func TestStore_ExpireSoloUnaVez(t *testing.T) {
	ctx := context.Background()
	s := session.NewStore(sessionstore.NewMemory(), nil)
	require.NoError(t, s.Login(ctx, entity.User{ID: 1, Role: "admin"}, "tok"))

	var cleared atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Expire(ctx) {
				cleared.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), cleared.Load())
	assert.False(t, s.State().IsAuthenticated())
}

func TestRegistry_StorePorSesionYVistas(t *testing.T) {
	r := session.NewRegistry(sessionstore.MemoryFactory(sessionstore.NewMemory()), nil)
	a1 := r.Store("a")
	a2 := r.Store("a")
	b := r.Store("b")
	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)

	built := 0
	build := func() any { built++; return &built }
	v1 := r.View("a", "workers", build)
	v2 := r.View("a", "workers", build)
	assert.Same(t, v1, v2)
	assert.Equal(t, 1, built)

	r.ResetViews("a")
	r.View("a", "workers", build)
	assert.Equal(t, 2, built)
}
