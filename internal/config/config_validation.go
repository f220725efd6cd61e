package config

// Database drivers supported by the storage layer.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for fields that were not set by any source.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDBDriver
	}

	if cfg.Storage.DB.DSN == "" {
		if cfg.Storage.DB.Driver == DriverSQLite {
			cfg.Storage.DB.DSN = "grocery.db"
		} else {
			return ErrInvalidStorageConfigs
		}
	}

	if cfg.App.Version == "" {
		cfg.App.Version = "0.1.0"
	}

	return nil
}
