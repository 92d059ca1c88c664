package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/model"
)

// Pool abstracts a pgx connection pool so tests can substitute pgxmock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}

	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	company       TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'user',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS analyses (
	id              TEXT PRIMARY KEY,
	source          TEXT NOT NULL,
	total           INTEGER NOT NULL,
	complete        INTEGER NOT NULL,
	incomplete      INTEGER NOT NULL,
	completion_rate INTEGER NOT NULL,
	summary         JSONB,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, company, role, password_hash, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.Company, u.Role, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: insert user %s", u.Email)
	}
	return nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, name, company, role, password_hash, created_at FROM users WHERE email = $1`,
		email,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Company, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get user %s", email)
	}
	return &u, nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, run *model.AnalysisRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO analyses (id, source, total, complete, incomplete, completion_rate, summary, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID, run.Source, run.Total, run.Complete, run.Incomplete, run.CompletionRate, run.Summary, run.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: insert analysis %s", run.ID)
	}
	return nil
}

func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*model.AnalysisRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses WHERE id = $1`,
		id,
	)

	var run model.AnalysisRun
	err := row.Scan(&run.ID, &run.Source, &run.Total, &run.Complete, &run.Incomplete, &run.CompletionRate, &run.Summary, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get analysis %s", id)
	}
	return &run, nil
}

func (s *PostgresStore) ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list analyses")
	}
	defer rows.Close()

	var runs []model.AnalysisRun
	for rows.Next() {
		var run model.AnalysisRun
		if err := rows.Scan(&run.ID, &run.Source, &run.Total, &run.Complete, &run.Incomplete, &run.CompletionRate, &run.Summary, &run.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan analysis")
		}
		runs = append(runs, run)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list analyses iterate")
}
