package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/server/migrations"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// postgresRepositories vends PostgreSQL repositories bound to one handle,
// either the pool or an open transaction.
type postgresRepositories struct {
	db dbx.DBTX
}

func (r postgresRepositories) Users() users.Repository {
	return users.NewPostgresRepository(r.db)
}

func (r postgresRepositories) Accounts() accounts.Repository {
	return accounts.NewPostgresRepository(r.db)
}

func (r postgresRepositories) RefreshTokens() refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(r.db)
}

type PostgresRepositoryManager struct {
	postgresRepositories
	db *sql.DB
}

// OpenPostgres opens a pgx-backed pool for dsn and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{postgresRepositories: postgresRepositories{db: db}, db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error {
	err := dbx.WithTx(ctx, m.db, txOptions, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, postgresRepositories{db: tx})
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, dbx.ErrBeginFailed) || errors.Is(err, dbx.ErrCommitFailed) {
		if dbx.IsTxConflict(err) {
			return fmt.Errorf("%w: %w", common.ErrTxConflict, err)
		}
		return fmt.Errorf("%w: %w", common.ErrTxAborted, err)
	}
	return err
}

func (m *PostgresRepositoryManager) Close(context.Context) error {
	return m.db.Close()
}
