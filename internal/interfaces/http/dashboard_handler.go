package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stitchdesk/internal/application/analytics"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// DashboardHandler maneja el dashboard del administrador.
type DashboardHandler struct {
	*pages
}

// newDashboardHandler construye el handler.
func newDashboardHandler(p *pages) *DashboardHandler {
	return &DashboardHandler{pages: p}
}

// GetSummary resumen del mes en curso: conteo de trabajadores, resumen
// financiero y margen.
// GET /admin/dashboard
//
// No requiere parámetros; el rango se calcula en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	conn := h.conn(c)
	uc := appanalytics.NewDashboardUseCase(backend.NewUserRepository(conn), backend.NewAnalyticsRepository(conn))
	v := viewFor[struct{}, *dto.DashboardDTO](h.pages, c, "dashboard", noFilter)
	return c.JSON(v.Refresh(c.Context(), uc.GetSummary).Page())
}
