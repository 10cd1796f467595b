package repository

import (
	"context"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
)

// ExpenseRepository gastos de empresa y hogar (misma forma, distinto tipo).
type ExpenseRepository interface {
	List(ctx context.Context, f dto.ExpenseFilter) ([]entity.Expense, error)
	Create(ctx context.Context, t entity.ExpenseType, in dto.ExpenseRequest) error
	Update(ctx context.Context, t entity.ExpenseType, id int64, in dto.ExpenseRequest) error
	Delete(ctx context.Context, t entity.ExpenseType, id int64) error
	Stats(ctx context.Context, f dto.ExpenseFilter) (*entity.ExpenseStats, error)
	Categories(ctx context.Context, t entity.ExpenseType) ([]string, error)
}

// ExportRepository exportaciones a empresas cliente.
type ExportRepository interface {
	List(ctx context.Context, f dto.ExportFilter) ([]entity.ExportRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.ExportRecord, error)
	Create(ctx context.Context, in dto.ExportRequest) error
	Update(ctx context.Context, id int64, in dto.ExportRequest) error
	Delete(ctx context.Context, id int64) error
	Descriptions(ctx context.Context) ([]entity.ExportDescription, error)
	Companies(ctx context.Context) ([]string, error)
	Stats(ctx context.Context, f dto.ExportFilter) (*entity.ExportStats, error)
}
