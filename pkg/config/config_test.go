package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stitchdesk/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, 3*time.Second, cfg.API.BannerDelay())
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "https://backend.example.com/api/")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_DRIVER", "FILE")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example.com/api", cfg.API.BaseURL, "se recorta la barra final")
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.Equal(t, "file", cfg.Session.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_DRIVER", "etcd")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "shell", Password: "p@ss/word", DBName: "stitchdesk", SSLMode: "disable"}
	assert.Equal(t, "postgres://shell:p%40ss%2Fword@db:5432/stitchdesk?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@host/db"
	assert.Equal(t, "postgres://u:p@host/db", c.ConnectionString(), "DATABASE_URL tiene prioridad")
}
