package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "users"

type userDocument struct {
	ID           string    `bson:"_id"`
	UserName     string    `bson:"username"`
	PasswordHash []byte    `bson:"passwordHash"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID,
		UserName:     d.UserName,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		CreatedAt:    d.CreatedAt,
	}
}

// MongoRepository keeps users in a MongoDB collection. When sess is set,
// every operation joins the session's transaction.
type MongoRepository struct {
	coll *mongo.Collection
	sess mongo.Session
}

func NewMongoRepository(db *mongo.Database, sess mongo.Session) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName), sess: sess}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := userDocument{
		ID:           uuid.NewString(),
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(dbx.SessionContext(ctx, r.sess), doc); err != nil {
		if dbx.IsDuplicateKey(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = doc.ID
	user.CreatedAt = doc.CreatedAt
	return user, nil
}

func (r *MongoRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": userName})
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(dbx.SessionContext(ctx, r.sess), filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	set := bson.M{}
	if p.PasswordHash != nil {
		set["passwordHash"] = p.PasswordHash
	}
	if p.FirstName != nil {
		set["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		set["lastName"] = *p.LastName
	}

	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	res, err := r.coll.UpdateOne(dbx.SessionContext(ctx, r.sess), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) Find(ctx context.Context, filter string, limit int) ([]*models.User, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(filter), Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"firstName": re},
		bson.M{"lastName": re},
	}}

	opts := options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"passwordHash": 0})

	sctx := dbx.SessionContext(ctx, r.sess)
	cur, err := r.coll.Find(sctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(sctx)

	var result []*models.User
	for cur.Next(sctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// EnsureIndexes creates the unique username index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
