package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/stitchdesk/internal/application/dto"
	"github.com/jhoicas/stitchdesk/internal/application/reports"
	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/domain/entity"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
	"github.com/jhoicas/stitchdesk/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry           *session.Registry
	Backend            *backend.Client
	Inspector          reports.WorkbookInspector
	Statements         reports.StatementRenderer
	Cookie             CookieConfig
	BannerDelay        time.Duration
	LoginRatePerMinute int
	Log                *logger.Logger
}

// Router registra las rutas del shell.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	p := &pages{registry: deps.Registry, backend: deps.Backend, bannerDelay: deps.BannerDelay}

	app.Use(RequestLogger(log.Component("http")))
	app.Use(SessionMiddleware(deps.Registry, deps.Cookie))

	// Público
	authHandler := newAuthHandler(p)
	app.Get("/login", authHandler.State)
	app.Post("/login", loginLimiter(deps.LoginRatePerMinute), authHandler.Login)
	app.Post("/signup", authHandler.Signup)
	app.Post("/logout", authHandler.Logout)
	app.Get("/nav", authHandler.Nav)

	// Administrador
	admin := app.Group("/admin", RequireRole(entity.RoleAdmin))

	dashboardHandler := newDashboardHandler(p)
	admin.Get("/dashboard", dashboardHandler.GetSummary)

	workersHandler := newWorkersHandler(p)
	admin.Get("/workers", workersHandler.List)
	admin.Post("/workers", workersHandler.Create)
	admin.Put("/workers/:id", workersHandler.Update)
	admin.Post("/workers/:id/password", workersHandler.ChangePassword)
	admin.Delete("/workers/:id", workersHandler.Delete)

	workHandler := newWorkHandler(p)
	admin.Get("/work", workHandler.List)
	admin.Post("/work/form", workHandler.Form)
	admin.Get("/work/:id/form", workHandler.EditForm)
	admin.Post("/work", workHandler.Create)
	admin.Put("/work/:id", workHandler.Update)
	admin.Delete("/work/:id", workHandler.Delete)

	attendanceHandler := newAttendanceHandler(p)
	admin.Get("/attendance", attendanceHandler.List)
	admin.Post("/attendance", attendanceHandler.Create)
	admin.Put("/attendance/:id", attendanceHandler.UpdateStatus)
	admin.Delete("/attendance/:id", attendanceHandler.Delete)

	financeHandler := newFinanceHandler(p)
	admin.Get("/finance/:type", financeHandler.List)
	admin.Post("/finance/:type", financeHandler.Create)
	admin.Put("/finance/:type/:id", financeHandler.Update)
	admin.Delete("/finance/:type/:id", financeHandler.Delete)

	exportsHandler := newExportsHandler(p)
	admin.Get("/exports", exportsHandler.List)
	admin.Post("/exports", exportsHandler.Create)
	admin.Put("/exports/:id", exportsHandler.Update)
	admin.Post("/exports/:id/paid", exportsHandler.MarkPaid)
	admin.Delete("/exports/:id", exportsHandler.Delete)

	reportsHandler := newReportsHandler(p, deps.Inspector, deps.Statements)
	admin.Get("/reports", reportsHandler.Overview)
	admin.Get("/reports/salary", reportsHandler.Salary)
	admin.Get("/reports/salary/pdf", reportsHandler.SalaryPDF)
	admin.Get("/reports/export", reportsHandler.Export)

	// Trabajador
	worker := app.Group("/worker", RequireRole(entity.RoleWorker))
	portalHandler := newPortalHandler(p, deps.Statements)
	worker.Get("/work", portalHandler.MyWork)
	worker.Get("/salary", portalHandler.Salary)
	worker.Get("/salary/pdf", portalHandler.SalaryPDF)
	worker.Get("/profile", portalHandler.Profile)
	worker.Post("/profile/password", portalHandler.ChangePassword)
}

// loginLimiter limita intentos de login por IP. perMinute <= 0 lo desactiva.
func loginLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "TOO_MANY_REQUESTS", Message: "too many login attempts, try again later",
			})
		},
	})
}
