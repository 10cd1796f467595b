package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/guard"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/pkg/logger"
)

// Locals keys de la sesión del navegador en Fiber.
const (
	LocalSessionID = "session_id"
	LocalStore     = "session_store"
	LocalNavigator = "navigator"
)

// CookieConfig cookie que identifica la sesión del navegador.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Navigator registra la redirección que pide el cliente del backend tras un
// 401. Varias llamadas en paralelo pueden pedirla; gana la primera.
type Navigator struct {
	path string

	mu     sync.Mutex
	target string
}

// CurrentPath ruta del request en curso.
func (n *Navigator) CurrentPath() string { return n.path }

// Navigate guarda el destino; se aplica al terminar el handler.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.target == "" {
		n.target = path
	}
}

// Target destino pendiente o "".
func (n *Navigator) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target
}

// SessionMiddleware asocia el request a la sesión de su cookie (creándola si
// falta o no es un uuid) y restaura usuario y token del storage. Si durante
// el handler el backend expiró la sesión, la respuesta se reemplaza por la
// redirección a login.
func SessionMiddleware(reg *session.Registry, cookie CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookie.Name)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookie.Name,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(cookie.TTL.Seconds()),
				Secure:   cookie.Secure,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		store := reg.Store(sid)
		store.Restore(c.Context())
		nav := &Navigator{path: c.Path()}

		c.Locals(LocalSessionID, sid)
		c.Locals(LocalStore, store)
		c.Locals(LocalNavigator, nav)

		err := c.Next()
		if target := nav.Target(); target != "" {
			reg.ResetViews(sid)
			c.Location(target)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.RedirectResponse{
				Code: "SESSION_EXPIRED", Message: domain.Message(domain.ErrSessionExpired), Redirect: target,
			})
		}
		return err
	}
}

// RequireRole aplica la guarda de rutas: espera mientras la sesión se
// restaura (202), redirige sin sesión o con rol ajeno (303) y deja pasar en
// otro caso.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := guard.Evaluate(SessionStore(c).State(), roles...)
		switch d.Outcome {
		case guard.Loading:
			return c.Status(fiber.StatusAccepted).JSON(dto.PageResponse{State: "loading"})
		case guard.Redirect:
			c.Location(d.Target)
			return c.Status(fiber.StatusSeeOther).JSON(dto.RedirectResponse{Code: "REDIRECT", Redirect: d.Target})
		}
		return c.Next()
	}
}

// RequestLogger log de acceso por request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// SessionID id de la sesión del navegador (después de SessionMiddleware).
func SessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// SessionStore sesión del request (después de SessionMiddleware).
func SessionStore(c *fiber.Ctx) *session.Store {
	s, _ := c.Locals(LocalStore).(*session.Store)
	return s
}

func navigatorFrom(c *fiber.Ctx) *Navigator {
	n, _ := c.Locals(LocalNavigator).(*Navigator)
	return n
}

// CurrentUserID id del usuario autenticado, 0 sin sesión.
func CurrentUserID(c *fiber.Ctx) int64 {
	st := SessionStore(c).State()
	if st.User == nil {
		return 0
	}
	return st.User.ID
}
