package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stitchdesk/internal/application/session"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/backend"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/pdf"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/postgres"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/sessionstore"
	"github.com/jhoicas/stitchdesk/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/stitchdesk/internal/interfaces/http"
	"github.com/jhoicas/stitchdesk/pkg/config"
	"github.com/jhoicas/stitchdesk/pkg/logger"
)

const (
	sweepEvery  = 5 * time.Minute
	sessionIdle = 30 * time.Minute
)

func main() {
	// Montos como números JSON, tanto hacia el backend (que los valida así)
	// como en las páginas. Afecta a todo el proceso.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Str("session_driver", cfg.Session.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory, closeStorage := storageFactory(ctx, cfg, log)
	defer closeStorage()

	registry := session.NewRegistry(factory, log.Component("session"))
	go sweep(ctx, registry)

	client := backend.NewClient(backend.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		LoginPath: "/login",
	}, log.Component("backend"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:   registry,
		Backend:    client,
		Inspector:  spreadsheet.NewInspector(),
		Statements: pdf.NewStatementGenerator(cfg.App.Name),
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL(),
		},
		BannerDelay:        cfg.API.BannerDelay(),
		LoginRatePerMinute: cfg.HTTP.LoginRatePerMinute,
		Log:                log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// storageFactory elige dónde viven usuario y token de cada sesión.
func storageFactory(ctx context.Context, cfg *config.Config, log *logger.Logger) (session.StorageFactory, func()) {
	switch cfg.Session.Driver {
	case "redis":
		rdb, err := sessionstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		return sessionstore.RedisFactory(sessionstore.NewRedis(rdb, cfg.Session.TTL())), func() { _ = rdb.Close() }
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		sessions := postgres.NewSessions(pool, cfg.Session.TTL())
		if err := sessions.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de sesiones")
		}
		go purge(ctx, sessions, log)
		return sessions.Factory(), pool.Close
	case "file":
		if err := os.MkdirAll(cfg.Session.Dir, 0o700); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Session.Dir).Msg("directorio de sesiones")
		}
		return sessionstore.FileFactory(cfg.Session.Dir), func() {}
	default:
		mem := sessionstore.NewMemoryTTL(cfg.Session.TTL())
		go purge(ctx, mem, log)
		return sessionstore.MemoryFactory(mem), func() {}
	}
}

// sweep libera periódicamente las sesiones inactivas en memoria.
func sweep(ctx context.Context, reg *session.Registry) {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			reg.Sweep(sessionIdle)
		}
	}
}

// purger storage con claves vencidas que no se borran solas.
type purger interface {
	Purge(ctx context.Context) (int64, error)
}

// purge borra periódicamente las claves de sesión vencidas.
func purge(ctx context.Context, sessions purger, log *logger.Logger) {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := sessions.Purge(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("purga de sesiones")
				continue
			}
			if n > 0 {
				log.Debug().Int64("filas", n).Msg("sesiones vencidas purgadas")
			}
		}
	}
}
