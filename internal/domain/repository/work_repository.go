package repository

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// WorkRepository trabajo diario y catálogo de descripciones.
type WorkRepository interface {
	ListEntries(ctx context.Context, f dto.WorkFilter) ([]entity.WorkEntry, error)
	GetEntry(ctx context.Context, id int64) (*entity.WorkEntry, error)
	CreateEntry(ctx context.Context, in dto.WorkEntryRequest) error
	UpdateEntry(ctx context.Context, id int64, in dto.WorkEntryRequest) error
	DeleteEntry(ctx context.Context, id int64) error
	Stats(ctx context.Context, f dto.WorkFilter) (*entity.WorkStats, error)
	ListDescriptions(ctx context.Context) ([]entity.WorkDescription, error)
	CreateDescription(ctx context.Context, in dto.DescriptionRequest) (*entity.WorkDescription, error)
	// MyEntries trabajo del usuario autenticado (vista de trabajador).
	MyEntries(ctx context.Context, dates dto.DateFilter) ([]entity.WorkEntry, error)
}

// AttendanceRepository asistencia.
type AttendanceRepository interface {
	ListByDate(ctx context.Context, f dto.AttendanceFilter) ([]entity.AttendanceRecord, error)
	Summary(ctx context.Context, f dto.ReportFilter) (*entity.AttendanceSummary, error)
	Create(ctx context.Context, in dto.AttendanceRequest) error
	UpdateStatus(ctx context.Context, id int64, in dto.AttendanceStatusRequest) error
	Delete(ctx context.Context, id int64) error
}
