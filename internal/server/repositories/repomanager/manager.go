package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/assets"
)

// RepositoryManager vends repositories bound to a DB handle and applies the
// schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Assets(db dbx.DBTX) assets.Repository
}
