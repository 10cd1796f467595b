package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stitchdesk/internal/application/analytics"
	"github.com/jhoicas/stitchdesk/internal/application/dailywork"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/portal"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// PortalHandler páginas del trabajador. El usuario sale siempre de la
// sesión, nunca de la query.
type PortalHandler struct {
	*pages
	statements reports.StatementRenderer
}

// newPortalHandler construye el handler.
func newPortalHandler(p *pages, statements reports.StatementRenderer) *PortalHandler {
	return &PortalHandler{pages: p, statements: statements}
}

func (h *PortalHandler) portal(c *fiber.Ctx) *portal.UseCase {
	conn := h.conn(c)
	return portal.NewUseCase(backend.NewUserRepository(conn), backend.NewAnalyticsRepository(conn), CurrentUserID(c))
}

func thisMonth() dto.DateFilter {
	return appanalytics.MonthToDate(time.Now())
}

// MyWork trabajo propio con totales y desglose mensual.
// GET /worker/work?startDate=&endDate=
func (h *PortalHandler) MyWork(c *fiber.Ctx) error {
	conn := h.conn(c)
	uc := dailywork.NewUseCase(backend.NewWorkRepository(conn), backend.NewUserRepository(conn))
	v := viewFor[dto.DateFilter, dailywork.MyWorkData](h.pages, c, "my-work", thisMonth)
	return show(c, v, func() (dto.DateFilter, error) { return dateFilter(c, v.Filter()) }, uc.MyWork)
}

// Salary salario propio en el rango.
// GET /worker/salary?startDate=&endDate=
func (h *PortalHandler) Salary(c *fiber.Ctx) error {
	uc := h.portal(c)
	v := viewFor[dto.DateFilter, reports.SalaryPage](h.pages, c, "my-salary", thisMonth)
	return show(c, v, func() (dto.DateFilter, error) { return dateFilter(c, v.Filter()) }, uc.Salary)
}

// SalaryPDF constancia de salario propia.
// GET /worker/salary/pdf?startDate=&endDate=
func (h *PortalHandler) SalaryPDF(c *fiber.Ctx) error {
	dates, err := dateFilter(c, thisMonth())
	if err != nil {
		return writeError(c, err)
	}
	conn := h.conn(c)
	uc := reports.NewStatementUseCase(backend.NewAnalyticsRepository(conn), backend.NewUserRepository(conn), h.statements)
	doc, st, err := uc.Mine(c.Context(), CurrentUserID(c), dates)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, st.FileName(), doc)
}

// Profile GET /worker/profile
func (h *PortalHandler) Profile(c *fiber.Ctx) error {
	uc := h.portal(c)
	v := viewFor[struct{}, dto.ProfileDTO](h.pages, c, "profile", noFilter)
	return c.JSON(v.Refresh(c.Context(), uc.Profile).Page())
}

// ChangePassword POST /worker/profile/password
func (h *PortalHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	uc := h.portal(c)
	v := viewFor[struct{}, dto.ProfileDTO](h.pages, c, "profile", noFilter)
	return mutate(c, v, "Password changed", func(ctx context.Context) error {
		return uc.ChangePassword(ctx, in)
	}, uc.Profile, nil)
}
