// Package finance gastos de empresa y de hogar. Ambas páginas comparten
// forma; el tipo viaja en el filtro.
package finance

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/domain/repository"
)

// UseCase página de gastos.
type UseCase struct {
	expenses repository.ExpenseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(expenses repository.ExpenseRepository) *UseCase {
	return &UseCase{expenses: expenses}
}

// Load lista, totales y categorías del tipo pedido.
func (uc *UseCase) Load(ctx context.Context, f dto.ExpenseFilter) (dto.FinancePageDTO, error) {
	if !f.Type.Valid() {
		return dto.FinancePageDTO{}, fmt.Errorf("%w: expense type %q", domain.ErrInvalidInput, f.Type)
	}
	page := dto.FinancePageDTO{Type: f.Type}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.expenses.List(gctx, f)
		page.Expenses = list
		return err
	})
	g.Go(func() error {
		stats, err := uc.expenses.Stats(gctx, f)
		page.Stats = stats
		return err
	})
	g.Go(func() error {
		cats, err := uc.expenses.Categories(gctx, f.Type)
		page.Categories = cats
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.FinancePageDTO{}, err
	}
	return page, nil
}

func validate(in dto.ExpenseRequest) (dto.ExpenseRequest, error) {
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" || in.Date.IsZero() {
		return in, fmt.Errorf("%w: category and date are required", domain.ErrInvalidInput)
	}
	return in, nil
}

func (uc *UseCase) Create(ctx context.Context, t entity.ExpenseType, in dto.ExpenseRequest) error {
	in, err := validate(in)
	if err != nil {
		return err
	}
	return uc.expenses.Create(ctx, t, in)
}

func (uc *UseCase) Update(ctx context.Context, t entity.ExpenseType, id int64, in dto.ExpenseRequest) error {
	in, err := validate(in)
	if err != nil {
		return err
	}
	return uc.expenses.Update(ctx, t, id, in)
}

func (uc *UseCase) Delete(ctx context.Context, t entity.ExpenseType, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	return uc.expenses.Delete(ctx, t, id)
}
