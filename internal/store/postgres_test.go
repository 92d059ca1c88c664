package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/model"
)

func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresFromPool(mock), mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateUser(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "owner@acme.test", "Pat Owner", "Acme Roofing", "user", "$2a$10$fakehash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	u := &model.User{
		Email:        "owner@acme.test",
		Name:         "Pat Owner",
		Company:      "Acme Roofing",
		PasswordHash: "$2a$10$fakehash",
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "user", u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetUserByEmail(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, email, name, company, role, password_hash, created_at FROM users`).
		WithArgs("owner@acme.test").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "company", "role", "password_hash", "created_at"}).
			AddRow("u-1", "owner@acme.test", "Pat Owner", "Acme Roofing", "admin", "hash", created))

	u, err := s.GetUserByEmail(context.Background(), "owner@acme.test")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, created, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetUserByEmail_NotFound(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, email, name, company, role, password_hash, created_at FROM users`).
		WithArgs("nobody@acme.test").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetUserByEmail(context.Background(), "nobody@acme.test")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAnalysis(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	summary := []byte(`{"missing_fields":[]}`)
	mock.ExpectExec(`INSERT INTO analyses`).
		WithArgs(pgxmock.AnyArg(), "drive", 10, 6, 4, 60, summary, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run := &model.AnalysisRun{
		Source:         "drive",
		Total:          10,
		Complete:       6,
		Incomplete:     4,
		CompletionRate: 60,
		Summary:        summary,
	}
	require.NoError(t, s.SaveAnalysis(context.Background(), run))
	assert.NotEmpty(t, run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAnalysis_NotFound(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses WHERE`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAnalysis(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAnalyses(t *testing.T) {
	t.Parallel()
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses ORDER BY created_at DESC`).
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "source", "total", "complete", "incomplete", "completion_rate", "summary", "created_at"}).
			AddRow("a-2", "drive", 5, 3, 2, 60, []byte(`{}`), now).
			AddRow("a-1", "file", 8, 8, 0, 100, []byte(`{}`), now.Add(-time.Hour)))

	runs, err := s.ListAnalyses(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a-2", runs[0].ID)
	assert.Equal(t, 100, runs[1].CompletionRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
