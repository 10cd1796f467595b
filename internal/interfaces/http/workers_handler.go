package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/application/workers"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// WorkersHandler gestión de trabajadores (solo admin).
type WorkersHandler struct {
	*pages
}

// newWorkersHandler construye el handler.
func newWorkersHandler(p *pages) *WorkersHandler {
	return &WorkersHandler{pages: p}
}

func (h *WorkersHandler) bind(c *fiber.Ctx) (*workers.UseCase, *listview.View[struct{}, dto.WorkersPageDTO]) {
	uc := workers.NewUseCase(backend.NewUserRepository(h.conn(c)))
	v := viewFor[struct{}, dto.WorkersPageDTO](h.pages, c, "workers", noFilter)
	return uc, v
}

// List GET /admin/workers
func (h *WorkersHandler) List(c *fiber.Ctx) error {
	uc, v := h.bind(c)
	return c.JSON(v.Refresh(c.Context(), uc.Load).Page())
}

// Create POST /admin/workers
func (h *WorkersHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	echo := in
	echo.Password = ""
	return mutate(c, v, "Worker created", func(ctx context.Context) error {
		return uc.Create(ctx, in)
	}, uc.Load, echo)
}

// Update PUT /admin/workers/:id
func (h *WorkersHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Worker updated", func(ctx context.Context) error {
		return uc.Update(ctx, id, in)
	}, uc.Load, in)
}

// ChangePassword POST /admin/workers/:id/password
func (h *WorkersHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Password changed", func(ctx context.Context) error {
		return uc.ChangePassword(ctx, id, in)
	}, uc.Load, nil)
}

// Delete DELETE /admin/workers/:id?confirm=true
func (h *WorkersHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	confirmed := c.QueryBool("confirm")
	uc, v := h.bind(c)
	return mutate(c, v, "Worker deleted", func(ctx context.Context) error {
		return uc.Delete(ctx, id, confirmed)
	}, uc.Load, nil)
}
