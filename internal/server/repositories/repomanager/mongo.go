package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// maxCommitAttempts bounds how often a commit with an unknown outcome is
// resent on the same session.
const maxCommitAttempts = 3

type mongoRepositories struct {
	db   *mongo.Database
	sess mongo.Session
}

func (r mongoRepositories) Users() users.Repository {
	return users.NewMongoRepository(r.db, r.sess)
}

func (r mongoRepositories) Accounts() accounts.Repository {
	return accounts.NewMongoRepository(r.db, r.sess)
}

func (r mongoRepositories) RefreshTokens() refreshtokens.Repository {
	return refreshtokens.NewMongoRepository(r.db, r.sess)
}

// MongoRepositoryManager keeps all collections in one database. Transactions
// need a replica set or a sharded cluster.
type MongoRepositoryManager struct {
	mongoRepositories
	client *mongo.Client
}

// ConnectMongo connects to uri and pings the primary.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}
	return client, nil
}

func NewMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		mongoRepositories: mongoRepositories{db: client.Database(database)},
		client:            client,
	}
}

// RunMigrations creates the unique indexes the repositories rely on.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := users.EnsureIndexes(ctx, m.db); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if err := accounts.EnsureIndexes(ctx, m.db); err != nil {
		return fmt.Errorf("accounts index: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error {
	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: start session: %w", common.ErrTxAborted, err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	if err := sess.StartTransaction(opts); err != nil {
		return fmt.Errorf("%w: start transaction: %w", common.ErrTxAborted, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sess.AbortTransaction(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(ctx, mongoRepositories{db: m.db, sess: sess}); err != nil {
		_ = sess.AbortTransaction(context.WithoutCancel(ctx))
		return err
	}

	if err := commit(ctx, sess); err != nil {
		if dbx.IsUnknownCommitResult(err) {
			return fmt.Errorf("%w: commit result unknown: %w", common.ErrTxAborted, err)
		}
		if dbx.IsTransientTxError(err) {
			return fmt.Errorf("%w: %w", common.ErrTxConflict, err)
		}
		return fmt.Errorf("%w: commit: %w", common.ErrTxAborted, err)
	}
	return nil
}

// commit resends commitTransaction on sess while the server reports an
// unknown commit result. Rerunning the transaction body instead could apply
// its writes twice.
func commit(ctx context.Context, sess mongo.Session) error {
	var err error
	for range maxCommitAttempts {
		err = sess.CommitTransaction(ctx)
		if err == nil || !dbx.IsUnknownCommitResult(err) {
			return err
		}
	}
	return err
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
