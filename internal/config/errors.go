package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN for a PostgreSQL backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates that the configured database driver
	// is neither "pgx" nor "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
)
