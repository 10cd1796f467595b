package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/dailywork"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// WorkHandler trabajo diario del administrador: listado, formulario con el
// catálogo de descripciones y CRUD.
type WorkHandler struct {
	*pages
}

// newWorkHandler construye el handler.
func newWorkHandler(p *pages) *WorkHandler {
	return &WorkHandler{pages: p}
}

// FormRequest paso del formulario: texto tecleado y/o entrada del catálogo
// elegida. El formulario viaja completo en cada paso.
type FormRequest struct {
	Form   dailywork.EntryForm `json:"form"`
	Text   *string             `json:"text,omitempty"`
	Select *int64              `json:"select,omitempty"`
}

func today() entity.Date {
	now := time.Now()
	return entity.NewDate(now.Year(), now.Month(), now.Day())
}

func (h *WorkHandler) bind(c *fiber.Ctx) (*dailywork.UseCase, *listview.View[dto.WorkFilter, dailywork.PageData]) {
	conn := h.conn(c)
	uc := dailywork.NewUseCase(backend.NewWorkRepository(conn), backend.NewUserRepository(conn))
	v := viewFor[dto.WorkFilter, dailywork.PageData](h.pages, c, "work", func() dto.WorkFilter {
		return dto.WorkFilter{Dates: dto.SingleDay(today())}
	})
	return uc, v
}

// List GET /admin/work?date=|startDate=&endDate=&userId=
func (h *WorkHandler) List(c *fiber.Ctx) error {
	uc, v := h.bind(c)
	return show(c, v, func() (dto.WorkFilter, error) {
		dates, err := dateFilter(c, v.Filter().Dates)
		if err != nil {
			return dto.WorkFilter{}, err
		}
		userID, err := optionalID(c, "userId")
		return dto.WorkFilter{Dates: dates, UserID: userID}, err
	}, uc.Load)
}

// EditForm formulario precargado de una entrada.
// GET /admin/work/:id/form
func (h *WorkHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	uc, _ := h.bind(c)
	form, err := uc.Edit(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

// Form aplica un paso al formulario: primero el texto, luego la selección.
// POST /admin/work/form
func (h *WorkHandler) Form(c *fiber.Ctx) error {
	var in FormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	form := in.Form
	if in.Text != nil {
		form.Description.Type(*in.Text)
	}
	if in.Select != nil {
		uc, _ := h.bind(c)
		selected, err := uc.Select(c.Context(), form, *in.Select)
		if err != nil {
			return writeError(c, err)
		}
		form = selected
	}
	return c.JSON(form)
}

// Create POST /admin/work
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var form dailywork.EntryForm
	if err := c.BodyParser(&form); err != nil {
		return invalidBody(c)
	}
	form.ID = nil
	return h.save(c, form, "Work entry created")
}

// Update PUT /admin/work/:id
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var form dailywork.EntryForm
	if err := c.BodyParser(&form); err != nil {
		return invalidBody(c)
	}
	form.ID = &id
	return h.save(c, form, "Work entry updated")
}

func (h *WorkHandler) save(c *fiber.Ctx, form dailywork.EntryForm, msg string) error {
	uc, v := h.bind(c)
	return mutate(c, v, msg, func(ctx context.Context) error {
		return uc.Save(ctx, form)
	}, uc.Load, form)
}

// Delete DELETE /admin/work/:id?confirm=true
func (h *WorkHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	confirmed := c.QueryBool("confirm")
	uc, v := h.bind(c)
	return mutate(c, v, "Work entry deleted", func(ctx context.Context) error {
		return uc.Delete(ctx, id, confirmed)
	}, uc.Load, nil)
}
