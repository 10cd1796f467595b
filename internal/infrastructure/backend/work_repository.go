package backend

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

var (
	_ repository.WorkRepository       = (*WorkRepo)(nil)
	_ repository.AttendanceRepository = (*AttendanceRepo)(nil)
)

// WorkRepo trabajo diario y catálogo de descripciones.
type WorkRepo struct {
	conn *Conn
}

// NewWorkRepository construye el adaptador de trabajo diario.
func NewWorkRepository(conn *Conn) *WorkRepo {
	return &WorkRepo{conn: conn}
}

func workQuery(f dto.WorkFilter) *query {
	return newQuery().dates(f.Dates).id("userId", f.UserID)
}

func (r *WorkRepo) ListEntries(ctx context.Context, f dto.WorkFilter) ([]entity.WorkEntry, error) {
	var out []entity.WorkEntry
	if err := r.conn.Get(ctx, "/work/entries", workQuery(f).values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WorkRepo) GetEntry(ctx context.Context, id int64) (*entity.WorkEntry, error) {
	var out entity.WorkEntry
	if err := r.conn.Get(ctx, idPath("/work/entries", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WorkRepo) CreateEntry(ctx context.Context, in dto.WorkEntryRequest) error {
	return r.conn.Post(ctx, "/work/entries", in, nil)
}

func (r *WorkRepo) UpdateEntry(ctx context.Context, id int64, in dto.WorkEntryRequest) error {
	return r.conn.Put(ctx, idPath("/work/entries", id), in, nil)
}

func (r *WorkRepo) DeleteEntry(ctx context.Context, id int64) error {
	return r.conn.Delete(ctx, idPath("/work/entries", id))
}

func (r *WorkRepo) Stats(ctx context.Context, f dto.WorkFilter) (*entity.WorkStats, error) {
	var out entity.WorkStats
	if err := r.conn.Get(ctx, "/work/stats", workQuery(f).values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WorkRepo) ListDescriptions(ctx context.Context) ([]entity.WorkDescription, error) {
	var out []entity.WorkDescription
	if err := r.conn.Get(ctx, "/work/descriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDescription devuelve la descripción creada para poder vincularla.
func (r *WorkRepo) CreateDescription(ctx context.Context, in dto.DescriptionRequest) (*entity.WorkDescription, error) {
	var out entity.WorkDescription
	if err := r.conn.Post(ctx, "/work/descriptions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WorkRepo) MyEntries(ctx context.Context, dates dto.DateFilter) ([]entity.WorkEntry, error) {
	var out []entity.WorkEntry
	if err := r.conn.Get(ctx, "/work/my-entries", newQuery().dates(dates).values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AttendanceRepo asistencia diaria.
type AttendanceRepo struct {
	conn *Conn
}

// NewAttendanceRepository construye el adaptador de asistencia.
func NewAttendanceRepository(conn *Conn) *AttendanceRepo {
	return &AttendanceRepo{conn: conn}
}

func (r *AttendanceRepo) ListByDate(ctx context.Context, f dto.AttendanceFilter) ([]entity.AttendanceRecord, error) {
	q := newQuery().date("date", f.Date).id("userId", f.UserID)
	var out []entity.AttendanceRecord
	if err := r.conn.Get(ctx, "/attendance", q.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AttendanceRepo) Summary(ctx context.Context, f dto.ReportFilter) (*entity.AttendanceSummary, error) {
	q := newQuery().dates(f.Dates).id("userId", f.UserID)
	var out entity.AttendanceSummary
	if err := r.conn.Get(ctx, "/attendance/summary", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AttendanceRepo) Create(ctx context.Context, in dto.AttendanceRequest) error {
	return r.conn.Post(ctx, "/attendance", in, nil)
}

func (r *AttendanceRepo) UpdateStatus(ctx context.Context, id int64, in dto.AttendanceStatusRequest) error {
	return r.conn.Put(ctx, idPath("/attendance", id), in, nil)
}

func (r *AttendanceRepo) Delete(ctx context.Context, id int64) error {
	return r.conn.Delete(ctx, idPath("/attendance", id))
}
