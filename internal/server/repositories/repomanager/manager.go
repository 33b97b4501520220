// Package repomanager vends repository implementations and owns schema
// migrations, so the service layer stays ignorant of the concrete store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronov/authkeeper/internal/dbx"
	"github.com/avoronov/authkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
