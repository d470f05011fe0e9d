package store

import (
	"context"

	"github.com/babyfoodstore/babyfood-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Database and collection names. The orders collection has always been
// singular in production data, so it stays that way.
const (
	DatabaseName       = "baby-food"
	UsersCollection    = "users"
	ProductsCollection = "products"
	OrderCollection    = "order"
)

// InsertResult mirrors the driver's insert acknowledgement, which the API
// returns verbatim as the response body.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserStore persists user documents. FindByEmail returns
// mongo.ErrNoDocuments when no user matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (bson.M, error)
	Insert(ctx context.Context, user models.User) (*InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error)
}

// ProductStore persists product documents. Products are schema-flexible:
// callers may store arbitrary fields, and the query methods match on the
// conventional ones (category, rating, price, flashSale).
type ProductStore interface {
	Insert(ctx context.Context, doc bson.M) (*InsertResult, error)
	FindAll(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	FindByCategory(ctx context.Context, category string) ([]bson.M, error)
	FindByRating(ctx context.Context, rating float64) ([]bson.M, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]bson.M, error)
	FindFlashSale(ctx context.Context) ([]bson.M, error)
	FindTopRated(ctx context.Context) ([]bson.M, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}

// OrderStore persists order documents.
type OrderStore interface {
	Insert(ctx context.Context, doc bson.M) (*InsertResult, error)
	FindAll(ctx context.Context) ([]bson.M, error)
	MarkDelivered(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)
}
