package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/directory-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	company       TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'user',
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS analyses (
	id              TEXT PRIMARY KEY,
	source          TEXT NOT NULL,
	total           INTEGER NOT NULL,
	complete        INTEGER NOT NULL,
	incomplete      INTEGER NOT NULL,
	completion_rate INTEGER NOT NULL,
	summary         TEXT,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, company, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.Company, u.Role, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert user %s", u.Email)
	}
	return nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, company, role, password_hash, created_at FROM users WHERE email = ?`,
		email,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Company, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get user %s", email)
	}
	return &u, nil
}

func (s *SQLiteStore) SaveAnalysis(ctx context.Context, run *model.AnalysisRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, source, total, complete, incomplete, completion_rate, summary, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Total, run.Complete, run.Incomplete, run.CompletionRate, string(run.Summary), run.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert analysis %s", run.ID)
	}
	return nil
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*model.AnalysisRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses WHERE id = ?`,
		id,
	)
	run, err := scanAnalysis(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get analysis %s", id)
	}
	return run, nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, total, complete, incomplete, completion_rate, summary, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list analyses")
	}
	defer rows.Close()

	var runs []model.AnalysisRun
	for rows.Next() {
		run, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis")
		}
		runs = append(runs, *run)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list analyses iterate")
}

func scanAnalysis(scan func(dest ...any) error) (*model.AnalysisRun, error) {
	var run model.AnalysisRun
	var summary sql.NullString
	if err := scan(&run.ID, &run.Source, &run.Total, &run.Complete, &run.Incomplete, &run.CompletionRate, &summary, &run.CreatedAt); err != nil {
		return nil, err
	}
	if summary.Valid {
		run.Summary = []byte(summary.String)
	}
	return &run, nil
}
