package repomanager

import (
	"context"
	"database/sql"

	"github.com/univerp/authd/internal/dbx"
	"github.com/univerp/authd/internal/server/repositories/settings"
	"github.com/univerp/authd/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can run
// several repository calls inside one transaction by handing each the same
// transactional handle.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Settings(db dbx.DBTX) settings.Repository
}
