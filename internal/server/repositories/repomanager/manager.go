package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/socialscribe/internal/dbx"
	"github.com/dmitrijs2005/socialscribe/internal/server/repositories/posts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Posts(db dbx.DBTX) posts.Repository
}
