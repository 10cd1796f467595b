package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stitchdesk/internal/application/analytics"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/finance"
	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// FinanceHandler gastos de empresa y de hogar; misma página, distinto :type.
type FinanceHandler struct {
	*pages
}

// newFinanceHandler construye el handler.
func newFinanceHandler(p *pages) *FinanceHandler {
	return &FinanceHandler{pages: p}
}

func expenseType(c *fiber.Ctx) (entity.ExpenseType, error) {
	t := entity.ExpenseType(c.Params("type"))
	if !t.Valid() {
		return "", invalid("expense type %q", c.Params("type"))
	}
	return t, nil
}

func (h *FinanceHandler) bind(c *fiber.Ctx, t entity.ExpenseType) (*finance.UseCase, *listview.View[dto.ExpenseFilter, dto.FinancePageDTO]) {
	uc := finance.NewUseCase(backend.NewExpenseRepository(h.conn(c)))
	v := viewFor[dto.ExpenseFilter, dto.FinancePageDTO](h.pages, c, "finance:"+string(t), func() dto.ExpenseFilter {
		return dto.ExpenseFilter{Type: t, Dates: appanalytics.MonthToDate(time.Now())}
	})
	return uc, v
}

// List GET /admin/finance/:type?startDate=&endDate=&category=
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	t, err := expenseType(c)
	if err != nil {
		return writeError(c, err)
	}
	uc, v := h.bind(c, t)
	return show(c, v, func() (dto.ExpenseFilter, error) {
		dates, err := dateFilter(c, v.Filter().Dates)
		return dto.ExpenseFilter{Type: t, Dates: dates, Category: c.Query("category")}, err
	}, uc.Load)
}

// Create POST /admin/finance/:type
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	t, err := expenseType(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c, t)
	return mutate(c, v, "Expense created", func(ctx context.Context) error {
		return uc.Create(ctx, t, in)
	}, uc.Load, in)
}

// Update PUT /admin/finance/:type/:id
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	t, err := expenseType(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c, t)
	return mutate(c, v, "Expense updated", func(ctx context.Context) error {
		return uc.Update(ctx, t, id, in)
	}, uc.Load, in)
}

// Delete DELETE /admin/finance/:type/:id?confirm=true
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	t, err := expenseType(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	confirmed := c.QueryBool("confirm")
	uc, v := h.bind(c, t)
	return mutate(c, v, "Expense deleted", func(ctx context.Context) error {
		return uc.Delete(ctx, t, id, confirmed)
	}, uc.Load, nil)
}
