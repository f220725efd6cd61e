package store

import (
	"context"

	"github.com/mealcart/list-keeper/internal/config"
	"github.com/mealcart/list-keeper/internal/logger"
)

// Storages bundles the database handle and every repository built on top of
// it, so the rest of the application receives one wired dependency.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	ListRepository ListRepository
}

// NewStorages opens the configured database backend and constructs all
// repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, config.ErrUnsupportedDBDriver
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		ListRepository: NewListRepository(db, log),
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
