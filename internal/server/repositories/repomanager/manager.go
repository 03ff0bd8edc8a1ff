// Package repomanager binds the repositories to a storage backend and runs
// groups of repository calls as one atomic transaction.
//
// Repositories obtained directly from a RepositoryManager run each call on its
// own. Repositories handed to a WithTx callback are bound to the transaction:
// their writes become visible together when the callback returns nil, and are
// discarded when it returns an error or panics.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/users"
)

type Repositories interface {
	Users() users.Repository
	Accounts() accounts.Repository
	RefreshTokens() refreshtokens.Repository
}

type RepositoryManager interface {
	Repositories
	RunMigrations(ctx context.Context) error
	// WithTx runs fn inside a transaction. Errors returned by fn come back
	// unchanged. A transaction the backend refused to commit because of a
	// concurrent writer yields common.ErrTxConflict; any other begin or commit
	// failure yields common.ErrTxAborted.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error
	Close(ctx context.Context) error
}
