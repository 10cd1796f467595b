package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

var (
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
	_ repository.ExportRepository  = (*ExportRepo)(nil)
)

// ExpenseRepo gastos de empresa y de hogar.
type ExpenseRepo struct {
	conn *Conn
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(conn *Conn) *ExpenseRepo {
	return &ExpenseRepo{conn: conn}
}

func expenseBase(t entity.ExpenseType) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: expense type %q", domain.ErrInvalidInput, t)
	}
	return "/finance/" + string(t) + "-expenses", nil
}

func expenseQuery(f dto.ExpenseFilter) *query {
	return newQuery().dates(f.Dates).str("category", f.Category)
}

func (r *ExpenseRepo) List(ctx context.Context, f dto.ExpenseFilter) ([]entity.Expense, error) {
	base, err := expenseBase(f.Type)
	if err != nil {
		return nil, err
	}
	var out []entity.Expense
	if err := r.conn.Get(ctx, base, expenseQuery(f).values(), &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Type == "" {
			out[i].Type = f.Type
		}
	}
	return out, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, t entity.ExpenseType, in dto.ExpenseRequest) error {
	base, err := expenseBase(t)
	if err != nil {
		return err
	}
	return r.conn.Post(ctx, base, in, nil)
}

func (r *ExpenseRepo) Update(ctx context.Context, t entity.ExpenseType, id int64, in dto.ExpenseRequest) error {
	base, err := expenseBase(t)
	if err != nil {
		return err
	}
	return r.conn.Put(ctx, idPath(base, id), in, nil)
}

func (r *ExpenseRepo) Delete(ctx context.Context, t entity.ExpenseType, id int64) error {
	base, err := expenseBase(t)
	if err != nil {
		return err
	}
	return r.conn.Delete(ctx, idPath(base, id))
}

func (r *ExpenseRepo) Stats(ctx context.Context, f dto.ExpenseFilter) (*entity.ExpenseStats, error) {
	base, err := expenseBase(f.Type)
	if err != nil {
		return nil, err
	}
	var out entity.ExpenseStats
	if err := r.conn.Get(ctx, base+"/statistics", expenseQuery(f).values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ExpenseRepo) Categories(ctx context.Context, t entity.ExpenseType) ([]string, error) {
	base, err := expenseBase(t)
	if err != nil {
		return nil, err
	}
	var out []string
	if err := r.conn.Get(ctx, base+"/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportRepo exportaciones.
type ExportRepo struct {
	conn *Conn
}

// NewExportRepository construye el adaptador de exportaciones.
func NewExportRepository(conn *Conn) *ExportRepo {
	return &ExportRepo{conn: conn}
}

func exportQuery(f dto.ExportFilter) *query {
	return newQuery().dates(f.Dates).str("companyName", f.CompanyName)
}

func (r *ExportRepo) List(ctx context.Context, f dto.ExportFilter) ([]entity.ExportRecord, error) {
	var out []entity.ExportRecord
	if err := r.conn.Get(ctx, "/exports", exportQuery(f).values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExportRepo) GetByID(ctx context.Context, id int64) (*entity.ExportRecord, error) {
	var out entity.ExportRecord
	if err := r.conn.Get(ctx, idPath("/exports", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ExportRepo) Create(ctx context.Context, in dto.ExportRequest) error {
	return r.conn.Post(ctx, "/exports", in, nil)
}

func (r *ExportRepo) Update(ctx context.Context, id int64, in dto.ExportRequest) error {
	return r.conn.Put(ctx, idPath("/exports", id), in, nil)
}

func (r *ExportRepo) Delete(ctx context.Context, id int64) error {
	return r.conn.Delete(ctx, idPath("/exports", id))
}

func (r *ExportRepo) Descriptions(ctx context.Context) ([]entity.ExportDescription, error) {
	var out []entity.ExportDescription
	if err := r.conn.Get(ctx, "/exports/descriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExportRepo) Companies(ctx context.Context) ([]string, error) {
	var out []string
	if err := r.conn.Get(ctx, "/exports/companies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExportRepo) Stats(ctx context.Context, f dto.ExportFilter) (*entity.ExportStats, error) {
	var out entity.ExportStats
	if err := r.conn.Get(ctx, "/exports/statistics", exportQuery(f).values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
