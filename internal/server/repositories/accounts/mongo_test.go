package accounts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func updated(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

func accountCursor(userID string, balance int64) bson.D {
	return mtest.CreateCursorResponse(0, "db.accounts", mtest.FirstBatch, bson.D{
		{Key: "_id", Value: "acc-1"},
		{Key: "userId", Value: userID},
		{Key: "balance", Value: balance},
	})
}

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoRepository(mt.DB, nil)
		require.NoError(mt, repo.Create(context.Background(), alice, 10000))
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Code: 11000, Message: "E11000"}))
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Create(context.Background(), alice, 0), common.ErrorAlreadyExists)
	})

	mt.Run("get balance", func(mt *mtest.T) {
		mt.AddMockResponses(accountCursor(alice, 6000))
		repo := NewMongoRepository(mt.DB, nil)

		got, err := repo.GetBalance(context.Background(), alice)
		require.NoError(mt, err)
		assert.Equal(mt, int64(6000), got)
	})

	mt.Run("get balance missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.accounts", mtest.FirstBatch))
		repo := NewMongoRepository(mt.DB, nil)

		_, err := repo.GetBalance(context.Background(), alice)
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})

	mt.Run("get balance for update", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: "acc-1"},
				{Key: "userId", Value: bob},
				{Key: "balance", Value: int64(3000)},
				{Key: "lock", Value: int64(4)},
			}},
		})
		repo := NewMongoRepository(mt.DB, nil)

		got, err := repo.GetBalanceForUpdate(context.Background(), bob)
		require.NoError(mt, err)
		assert.Equal(mt, int64(3000), got)
	})

	mt.Run("get balance for update missing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		repo := NewMongoRepository(mt.DB, nil)

		_, err := repo.GetBalanceForUpdate(context.Background(), bob)
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})

	mt.Run("credit", func(mt *mtest.T) {
		mt.AddMockResponses(updated(1))
		repo := NewMongoRepository(mt.DB, nil)
		require.NoError(mt, repo.Credit(context.Background(), bob, 4000))
	})

	mt.Run("credit missing", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0))
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Credit(context.Background(), bob, 4000), common.ErrorNotFound)
	})

	mt.Run("debit", func(mt *mtest.T) {
		mt.AddMockResponses(updated(1))
		repo := NewMongoRepository(mt.DB, nil)
		require.NoError(mt, repo.Debit(context.Background(), alice, 4000))
	})

	mt.Run("debit insufficient", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0), accountCursor(alice, 6000))
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Debit(context.Background(), alice, 7000), common.ErrInsufficientFunds)
	})

	mt.Run("debit missing", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0), mtest.CreateCursorResponse(0, "db.accounts", mtest.FirstBatch))
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Debit(context.Background(), alice, 1), common.ErrorNotFound)
	})

	mt.Run("debit write conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    112,
			Name:    "WriteConflict",
			Message: "write conflict",
			Labels:  []string{"TransientTransactionError"},
		}))
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Debit(context.Background(), alice, 1), common.ErrTxConflict)
	})

	mt.Run("non-positive amounts", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB, nil)
		assert.ErrorIs(mt, repo.Credit(context.Background(), alice, 0), common.ErrInvalidAmount)
		assert.ErrorIs(mt, repo.Debit(context.Background(), alice, -5), common.ErrInvalidAmount)
	})
}
