package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stitchdesk/internal/application/analytics"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/exports"
	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// ExportsHandler exportaciones a empresas clientes.
type ExportsHandler struct {
	*pages
}

// newExportsHandler construye el handler.
func newExportsHandler(p *pages) *ExportsHandler {
	return &ExportsHandler{pages: p}
}

// PaidRequest cuerpo de POST /admin/exports/:id/paid.
type PaidRequest struct {
	Paid bool `json:"paid"`
}

func (h *ExportsHandler) bind(c *fiber.Ctx) (*exports.UseCase, *listview.View[dto.ExportFilter, dto.ExportsPageDTO]) {
	uc := exports.NewUseCase(backend.NewExportRepository(h.conn(c)))
	v := viewFor[dto.ExportFilter, dto.ExportsPageDTO](h.pages, c, "exports", func() dto.ExportFilter {
		return dto.ExportFilter{Dates: appanalytics.MonthToDate(time.Now())}
	})
	return uc, v
}

// List GET /admin/exports?startDate=&endDate=&companyName=
func (h *ExportsHandler) List(c *fiber.Ctx) error {
	uc, v := h.bind(c)
	return show(c, v, func() (dto.ExportFilter, error) {
		dates, err := dateFilter(c, v.Filter().Dates)
		return dto.ExportFilter{Dates: dates, CompanyName: c.Query("companyName")}, err
	}, uc.Load)
}

// Create POST /admin/exports
func (h *ExportsHandler) Create(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Export created", func(ctx context.Context) error {
		return uc.Create(ctx, in)
	}, uc.Load, in)
}

// Update PUT /admin/exports/:id
func (h *ExportsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc, v := h.bind(c)
	return mutate(c, v, "Export updated", func(ctx context.Context) error {
		return uc.Update(ctx, id, in)
	}, uc.Load, in)
}

// MarkPaid POST /admin/exports/:id/paid
func (h *ExportsHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in PaidRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	msg := "Payment marked as received"
	if !in.Paid {
		msg = "Payment marked as pending"
	}
	uc, v := h.bind(c)
	return mutate(c, v, msg, func(ctx context.Context) error {
		return uc.MarkPaid(ctx, id, in.Paid)
	}, uc.Load, nil)
}

// Delete DELETE /admin/exports/:id?confirm=true
func (h *ExportsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	confirmed := c.QueryBool("confirm")
	uc, v := h.bind(c)
	return mutate(c, v, "Export deleted", func(ctx context.Context) error {
		return uc.Delete(ctx, id, confirmed)
	}, uc.Load, nil)
}
