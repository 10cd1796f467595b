package workers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/workers"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// fakeUsers registra las mutaciones; lo que no se prueba queda en el
// puerto embebido.
type fakeUsers struct {
	repository.UserRepository
	created []dto.CreateUserRequest
	deleted []int64
}

func (f *fakeUsers) List(context.Context) ([]entity.User, error) {
	return []entity.User{{ID: 2, Name: "Ana", Role: "worker"}}, nil
}
func (f *fakeUsers) Stats(context.Context) (*entity.UserStats, error) {
	return &entity.UserStats{TotalUsers: 1, TotalWorkers: 1}, nil
}
func (f *fakeUsers) Create(_ context.Context, in dto.CreateUserRequest) error {
	f.created = append(f.created, in)
	return nil
}
func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDelete_SinConfirmarEsEntradaInvalida(t *testing.T) {
	repo := &fakeUsers{}
	uc := workers.NewUseCase(repo)

	err := uc.Delete(context.Background(), 2, false)
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.deleted)

	require.NoError(t, uc.Delete(context.Background(), 2, true))
	assert.Equal(t, []int64{2}, repo.deleted)
}

func TestCreate_RolPorDefectoWorker(t *testing.T) {
	repo := &fakeUsers{}
	uc := workers.NewUseCase(repo)

	require.NoError(t, uc.Create(context.Background(), dto.CreateUserRequest{Name: " Ana ", Email: "ana@shop.test", Password: "x"}))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "worker", repo.created[0].Role)
	assert.Equal(t, "Ana", repo.created[0].Name)

	err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Ana", Email: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, repo.created, 1)
}

func TestChangePassword_NuevaRequerida(t *testing.T) {
	uc := workers.NewUseCase(&fakeUsers{})
	err := uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_ListaYConteos(t *testing.T) {
	uc := workers.NewUseCase(&fakeUsers{})
	page, err := uc.Load(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Len(t, page.Users, 1)
	assert.Equal(t, 1, page.Stats.TotalWorkers)
}
