package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stitchdesk/internal/application/auth"
	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/guard"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
)

// AuthHandler maneja login, registro y logout del shell.
type AuthHandler struct {
	*pages
}

// newAuthHandler construye el handler de auth.
func newAuthHandler(p *pages) *AuthHandler {
	return &AuthHandler{pages: p}
}

// useCase sobre la conexión anónima: un 401 del login son credenciales
// inválidas, no una sesión expirada.
func (h *AuthHandler) useCase(c *fiber.Ctx) *auth.AuthUseCase {
	return auth.NewAuthUseCase(backend.NewAuthRepository(h.backend.Anonymous()), SessionStore(c))
}

func sessionDTO(st session.State) dto.SessionDTO {
	out := dto.SessionDTO{Authenticated: st.IsAuthenticated(), User: st.User}
	if out.Authenticated {
		out.Role = st.Role.String()
		out.Home, _ = guard.HomeFor(st.Role)
	}
	return out
}

// State estado de la sesión para la pantalla de login. Con sesión abierta
// redirige a la pantalla del rol.
// GET /login
func (h *AuthHandler) State(c *fiber.Ctx) error {
	st := SessionStore(c).State()
	out := sessionDTO(st)
	if out.Home != "" {
		c.Location(out.Home)
		return c.Status(fiber.StatusSeeOther).JSON(dto.RedirectResponse{Code: "REDIRECT", Redirect: out.Home})
	}
	return c.JSON(out)
}

// Login abre la sesión y devuelve la pantalla inicial del rol.
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.useCase(c).Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	h.registry.ResetViews(SessionID(c))
	return c.JSON(sessionDTO(res.State))
}

// Signup alta pública; no abre sesión.
// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.useCase(c).Signup(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Account created. Please log in."})
}

// Logout cierra la sesión y descarta las vistas.
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.useCase(c).Logout(c.Context()); err != nil {
		return writeError(c, err)
	}
	h.registry.ResetViews(SessionID(c))
	return c.JSON(dto.RedirectResponse{Code: "LOGGED_OUT", Redirect: guard.LoginPath})
}

var (
	adminNav = []dto.NavItem{
		{Label: "Dashboard", Path: guard.AdminHome},
		{Label: "Workers", Path: "/admin/workers"},
		{Label: "Daily Work", Path: "/admin/work"},
		{Label: "Attendance", Path: "/admin/attendance"},
		{Label: "Company Expenses", Path: "/admin/finance/company"},
		{Label: "Home Expenses", Path: "/admin/finance/home"},
		{Label: "Exports", Path: "/admin/exports"},
		{Label: "Reports", Path: "/admin/reports"},
		{Label: "Salary", Path: "/admin/reports/salary"},
	}
	workerNav = []dto.NavItem{
		{Label: "My Work", Path: guard.WorkerHome},
		{Label: "My Salary", Path: "/worker/salary"},
		{Label: "Profile", Path: "/worker/profile"},
	}
)

// Nav menú lateral según el rol. Sin sesión solo hay login.
// GET /nav
func (h *AuthHandler) Nav(c *fiber.Ctx) error {
	st := SessionStore(c).State()
	out := dto.NavDTO{User: st.User, Home: guard.LoginPath}
	switch {
	case st.IsAdmin():
		out.Items = adminNav
	case st.IsWorker():
		out.Items = workerNav
	}
	if home, ok := guard.HomeFor(st.Role); ok && st.IsAuthenticated() {
		out.Role = st.Role.String()
		out.Home = home
	}
	return c.JSON(out)
}
