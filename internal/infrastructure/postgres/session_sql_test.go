package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestSessionsSQL_EnsureSchema(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS shell_sessions")).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, NewSessions(mock, 0).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionsSQL_SetEsUpsert(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (session_id, key) DO UPDATE")).
		WithArgs("sid-1", "token", "tok", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	st := NewSessions(mock, 0).Factory()("sid-1")
	require.NoError(t, st.Set(context.Background(), "token", "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionsSQL_GetSinTTL(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM shell_sessions WHERE session_id = $1 AND key = $2")).
		WithArgs("sid-1", "user").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"id":7}`))

	v, ok, err := NewSessions(mock, 0).Factory()("sid-1").Get(context.Background(), "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":7}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionsSQL_GetConTTLFiltraPorFecha(t *testing.T) {
	mock := newMock(t)
	sessions := NewSessions(mock, time.Hour)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	mock.ExpectQuery(regexp.QuoteMeta("AND updated_at >= $3")).
		WithArgs("sid-1", "token", now.Add(-time.Hour)).
		WillReturnError(pgx.ErrNoRows)

	_, ok, err := sessions.Factory()("sid-1").Get(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionsSQL_DeleteUsaAny(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("key = ANY($2)")).
		WithArgs("sid-1", []string{"user", "token"}).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, NewSessions(mock, 0).Factory()("sid-1").Delete(context.Background(), "user", "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
