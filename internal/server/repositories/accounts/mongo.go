package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "accounts"

type accountDocument struct {
	ID      string `bson:"_id"`
	UserID  string `bson:"userId"`
	Balance int64  `bson:"balance"`
	Lock    int64  `bson:"lock"`
}

// MongoRepository keeps accounts in a MongoDB collection. When sess is set,
// every operation joins the session's transaction.
type MongoRepository struct {
	coll *mongo.Collection
	sess mongo.Session
}

func NewMongoRepository(db *mongo.Database, sess mongo.Session) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName), sess: sess}
}

func (r *MongoRepository) Create(ctx context.Context, userID string, initial int64) error {
	if initial < 0 {
		return common.ErrInvalidAmount
	}

	doc := accountDocument{ID: uuid.NewString(), UserID: userID, Balance: initial}
	if _, err := r.coll.InsertOne(dbx.SessionContext(ctx, r.sess), doc); err != nil {
		if dbx.IsDuplicateKey(err) {
			return common.ErrorAlreadyExists
		}
		return wrapMongoErr(err)
	}
	return nil
}

func (r *MongoRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var doc accountDocument
	err := r.coll.FindOne(dbx.SessionContext(ctx, r.sess), bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, common.ErrorNotFound
		}
		return 0, wrapMongoErr(err)
	}
	return doc.Balance, nil
}

// GetBalanceForUpdate bumps a lock counter on the account document. Within a
// transaction this write makes any concurrent transaction touching the same
// account fail with a write conflict, which is what a row lock gives on SQL
// backends.
func (r *MongoRepository) GetBalanceForUpdate(ctx context.Context, userID string) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc accountDocument
	err := r.coll.FindOneAndUpdate(dbx.SessionContext(ctx, r.sess),
		bson.M{"userId": userID},
		bson.M{"$inc": bson.M{"lock": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, common.ErrorNotFound
		}
		return 0, wrapMongoErr(err)
	}
	return doc.Balance, nil
}

func (r *MongoRepository) Credit(ctx context.Context, userID string, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(dbx.SessionContext(ctx, r.sess),
		bson.M{"userId": userID},
		bson.M{"$inc": bson.M{"balance": amount}},
	)
	if err != nil {
		return wrapMongoErr(err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) Debit(ctx context.Context, userID string, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(dbx.SessionContext(ctx, r.sess),
		bson.M{"userId": userID, "balance": bson.M{"$gte": amount}},
		bson.M{"$inc": bson.M{"balance": -amount}},
	)
	if err != nil {
		return wrapMongoErr(err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	if _, err := r.GetBalance(ctx, userID); err != nil {
		return err
	}
	return common.ErrInsufficientFunds
}

func wrapMongoErr(err error) error {
	if dbx.IsTransientTxError(err) {
		return fmt.Errorf("%w: %w", common.ErrTxConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
}

// EnsureIndexes creates the unique index that keeps one account per user.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
