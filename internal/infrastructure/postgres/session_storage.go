package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stitchdesk/internal/application/session"
)

var _ session.Storage = (*SessionStorage)(nil)

// Querier subconjunto de pgxpool.Pool (y pgx.Tx) que usa el storage.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS shell_sessions (
		session_id TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (session_id, key)
	)`

// Sessions tabla shell_sessions compartida por todas las sesiones.
type Sessions struct {
	db  Querier
	ttl time.Duration
	now func() time.Time
}

// NewSessions construye el adaptador. ttl <= 0 no expira.
func NewSessions(db Querier, ttl time.Duration) *Sessions {
	return &Sessions{db: db, ttl: ttl, now: time.Now}
}

// EnsureSchema crea la tabla si no existe.
func (s *Sessions) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create shell_sessions: %w", err)
	}
	return nil
}

// Purge borra las claves que superaron el TTL. Devuelve cuántas filas borró.
func (s *Sessions) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM shell_sessions WHERE updated_at < $1`, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("purge shell_sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Factory storage aislado por id de sesión.
func (s *Sessions) Factory() session.StorageFactory {
	return func(sessionID string) session.Storage {
		return &SessionStorage{sessions: s, id: sessionID}
	}
}

// SessionStorage claves de una sesión dentro de shell_sessions.
type SessionStorage struct {
	sessions *Sessions
	id       string
}

func (st *SessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s := st.sessions
	query := `SELECT value FROM shell_sessions WHERE session_id = $1 AND key = $2`
	args := []any{st.id, key}
	if s.ttl > 0 {
		query += ` AND updated_at >= $3`
		args = append(args, s.now().Add(-s.ttl))
	}
	var v string
	err := s.db.QueryRow(ctx, query, args...).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get session key: %w", err)
	}
	return v, true, nil
}

func (st *SessionStorage) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO shell_sessions (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := st.sessions.db.Exec(ctx, query, st.id, key, value, st.sessions.now()); err != nil {
		return fmt.Errorf("set session key: %w", err)
	}
	return nil
}

func (st *SessionStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM shell_sessions WHERE session_id = $1 AND key = ANY($2)`
	if _, err := st.sessions.db.Exec(ctx, query, st.id, keys); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}
