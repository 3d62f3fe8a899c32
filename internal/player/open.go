package player

import (
	"context"
	"fmt"

	"construction21/internal/config"
	"construction21/internal/database"
)

// Open returns the store selected by cfg and a func that closes it
func Open(ctx context.Context, cfg config.Database) (Store, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteStore(db.DB), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		db, err := database.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db.Pool), db.Close, nil

	case config.DriverMemory:
		return NewMemoryStore(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown database driver: %q", cfg.Driver)
}
