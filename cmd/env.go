package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/directory"
	"github.com/sells-group/directory-cli/internal/store"
	"github.com/sells-group/directory-cli/pkg/drive"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.Path
		if dsn == "" {
			dsn = "directory.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initDrive(ctx context.Context) (drive.Client, error) {
	if cfg.Drive.CredentialsPath == "" {
		return nil, eris.New("drive credentials path is required (DIRECTORY_DRIVE_CREDENTIALS_PATH)")
	}

	creds, err := os.ReadFile(cfg.Drive.CredentialsPath)
	if err != nil {
		return nil, eris.Wrap(err, "read drive service account credentials")
	}

	return drive.NewClient(ctx, creds)
}

// initDirectory builds and initializes the drive-backed directory service.
func initDirectory(ctx context.Context) (*directory.Service, error) {
	client, err := initDrive(ctx)
	if err != nil {
		return nil, err
	}

	svc := directory.NewService(client, cfg.Drive, cfg.Images)
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
