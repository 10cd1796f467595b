package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/listview"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// pages lo que comparten los handlers de página: el registro de sesiones
// (con sus vistas) y el cliente del backend.
type pages struct {
	registry    *session.Registry
	backend     *backend.Client
	bannerDelay time.Duration
}

// conn conexión al backend atada a la sesión y a la navegación del request.
func (p *pages) conn(c *fiber.Ctx) *backend.Conn {
	return p.backend.Bind(SessionStore(c), navigatorFrom(c))
}

func noFilter() struct{} { return struct{}{} }

// viewFor vista de listado de la sesión guardada bajo key.
func viewFor[F, T any](p *pages, c *fiber.Ctx, key string, initial func() F) *listview.View[F, T] {
	v := p.registry.View(SessionID(c), key, func() any {
		return listview.New[F, T](initial(), p.bannerDelay)
	})
	return v.(*listview.View[F, T])
}

// show carga la página: con filtro en la query recarga con ese filtro, sin
// él refresca con el vigente. Los fallos de carga van en el estado de la
// página, no en el status.
func show[F, T any](c *fiber.Ctx, v *listview.View[F, T], parse func() (F, error), load listview.Loader[F, T]) error {
	ctx := c.Context()
	if !hasQuery(c) {
		return c.JSON(v.Refresh(ctx, load).Page())
	}
	f, err := parse()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(v.Reload(ctx, f, load).Page())
}

// mutate ejecuta una escritura sobre la vista. Si falla, la lista no cambia
// y el error vuelve en FormError junto con el formulario enviado.
func mutate[F, T any](c *fiber.Ctx, v *listview.View[F, T], msg string, cmd func(ctx context.Context) error, load listview.Loader[F, T], form any) error {
	snap, err := v.Mutate(c.Context(), msg, cmd, load)
	if err != nil {
		status, _ := errorStatus(err)
		page := snap.Page()
		page.FormError = domain.Message(err)
		page.Form = form
		return c.Status(status).JSON(page)
	}
	return c.JSON(snap.Page())
}
