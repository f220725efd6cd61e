package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/migrations"
)

// DB wraps the raw *sql.DB handle together with the driver-specific error
// classifier and a squirrel statement builder preconfigured with the
// placeholder format both supported backends understand.
type DB struct {
	*sql.DB
	driver     string
	classifier ErrorClassifier
	builder    sq.StatementBuilderType
	logger     *logger.Logger
}

// Migrate runs the embedded schema migrations for the connected backend.
// Schema creation lives entirely in the migrations package; repositories
// assume the tables already exist.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// IsUniqueViolation reports whether err is the backing store's signal for a
// violated unique constraint, using the driver-specific classifier.
func (db *DB) IsUniqueViolation(err error) bool {
	if db.classifier == nil {
		return false
	}
	return db.classifier.IsUniqueViolation(err)
}
