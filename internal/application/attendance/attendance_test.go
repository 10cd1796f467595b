package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/internal/application/attendance"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAttendance struct {
	created  []dto.AttendanceRequest
	statuses map[int64]entity.AttendanceStatus
	summary  []dto.ReportFilter
	deleted  []int64
}

func (f *fakeAttendance) ListByDate(context.Context, dto.AttendanceFilter) ([]entity.AttendanceRecord, error) {
	return []entity.AttendanceRecord{{ID: 1, Status: entity.AttendancePresent}}, nil
}
func (f *fakeAttendance) Summary(_ context.Context, rf dto.ReportFilter) (*entity.AttendanceSummary, error) {
	f.summary = append(f.summary, rf)
	return &entity.AttendanceSummary{}, nil
}
func (f *fakeAttendance) Create(_ context.Context, in dto.AttendanceRequest) error {
	f.created = append(f.created, in)
	return nil
}
func (f *fakeAttendance) UpdateStatus(_ context.Context, id int64, in dto.AttendanceStatusRequest) error {
	if f.statuses == nil {
		f.statuses = map[int64]entity.AttendanceStatus{}
	}
	f.statuses[id] = in.Status
	return nil
}
func (f *fakeAttendance) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeUsers solo implementa List; el resto no se usa en asistencia.
type fakeUsers struct {
	repository.UserRepository
}

func (fakeUsers) List(context.Context) ([]entity.User, error) {
	return []entity.User{{ID: 2, Name: "Ana", Role: "worker"}}, nil
}

func day() entity.Date { return entity.NewDate(2024, time.March, 5) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EstadoDesconocido(t *testing.T) {
	repo := &fakeAttendance{}
	uc := attendance.NewUseCase(repo, fakeUsers{})

	err := uc.Create(context.Background(), dto.AttendanceRequest{UserID: 2, Date: day(), Status: "vacation"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, `invalid input: unknown status "vacation"`, domain.Message(err))
	assert.Empty(t, repo.created, "no se llama al backend")

	require.NoError(t, uc.Create(context.Background(), dto.AttendanceRequest{UserID: 2, Date: day(), Status: entity.AttendanceHalfDay}))
	require.Len(t, repo.created, 1)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc := attendance.NewUseCase(&fakeAttendance{}, fakeUsers{})
	err := uc.Create(context.Background(), dto.AttendanceRequest{Status: entity.AttendancePresent})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	repo := &fakeAttendance{}
	uc := attendance.NewUseCase(repo, fakeUsers{})

	err := uc.UpdateStatus(context.Background(), 9, dto.AttendanceStatusRequest{Status: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.statuses)

	require.NoError(t, uc.UpdateStatus(context.Background(), 9, dto.AttendanceStatusRequest{Status: entity.AttendanceLeave}))
	assert.Equal(t, entity.AttendanceLeave, repo.statuses[9])
}

func TestLoad_ResumenDelMismoDia(t *testing.T) {
	repo := &fakeAttendance{}
	uc := attendance.NewUseCase(repo, fakeUsers{})

	page, err := uc.Load(context.Background(), dto.AttendanceFilter{Date: day()})
	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.Len(t, page.Workers, 1)
	require.Len(t, repo.summary, 1)
	start, end := repo.summary[0].Dates.Bounds()
	assert.Equal(t, day(), start)
	assert.Equal(t, day(), end)
	assert.Nil(t, repo.summary[0].UserID)
}

func TestDelete_RequiereConfirmacion(t *testing.T) {
	repo := &fakeAttendance{}
	uc := attendance.NewUseCase(repo, fakeUsers{})
	assert.ErrorIs(t, uc.Delete(context.Background(), 3, false), domain.ErrNotConfirmed)
	assert.Empty(t, repo.deleted)
	require.NoError(t, uc.Delete(context.Background(), 3, true))
	assert.Equal(t, []int64{3}, repo.deleted)
}
