package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a connection or a
// transaction and owns the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
