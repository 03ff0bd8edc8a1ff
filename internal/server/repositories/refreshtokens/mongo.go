package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "refreshTokens"

type tokenDocument struct {
	Token     string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}

type MongoRepository struct {
	coll *mongo.Collection
	sess mongo.Session
}

func NewMongoRepository(db *mongo.Database, sess mongo.Session) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName), sess: sess}
}

func (r *MongoRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	now := time.Now().UTC()
	doc := tokenDocument{Token: token, UserID: userID, ExpiresAt: now.Add(validity), CreatedAt: now}
	if _, err := r.coll.InsertOne(dbx.SessionContext(ctx, r.sess), doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	var doc tokenDocument
	if err := r.coll.FindOne(dbx.SessionContext(ctx, r.sess), bson.M{"_id": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &models.RefreshToken{
		UserID:    doc.UserID,
		Token:     doc.Token,
		Expires:   doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *MongoRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(dbx.SessionContext(ctx, r.sess), bson.M{"_id": token}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(dbx.SessionContext(ctx, r.sess), bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
