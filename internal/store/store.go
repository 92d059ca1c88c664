// Package store persists dashboard users and analysis summaries.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = eris.New("store: not found")

// Store defines the persistence interface for the dashboard.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Analyses
	SaveAnalysis(ctx context.Context, run *model.AnalysisRun) error
	GetAnalysis(ctx context.Context, id string) (*model.AnalysisRun, error)
	ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRun, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
