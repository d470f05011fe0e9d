package store

import (
	"context"

	"github.com/babyfoodstore/babyfood-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUsers is the MongoDB-backed UserStore.
type MongoUsers struct {
	col *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{col: db.Collection(UsersCollection)}
}

func (s *MongoUsers) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *MongoUsers) Insert(ctx context.Context, user models.User) (*InsertResult, error) {
	result, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoUsers) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	return updateByID(ctx, s.col, id, fields)
}

// MongoProducts is the MongoDB-backed ProductStore.
type MongoProducts struct {
	col *mongo.Collection
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{col: db.Collection(ProductsCollection)}
}

func (s *MongoProducts) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	result, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoProducts) FindAll(ctx context.Context) ([]bson.M, error) {
	return findDocs(ctx, s.col, bson.M{}, nil)
}

func (s *MongoProducts) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var product bson.M
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *MongoProducts) FindByCategory(ctx context.Context, category string) ([]bson.M, error) {
	return findDocs(ctx, s.col, bson.M{"category": category}, nil)
}

func (s *MongoProducts) FindByRating(ctx context.Context, rating float64) ([]bson.M, error) {
	return findDocs(ctx, s.col, bson.M{"rating": rating}, nil)
}

func (s *MongoProducts) FindByPriceRange(ctx context.Context, min, max float64) ([]bson.M, error) {
	filter := bson.M{"price": bson.M{"$gte": min, "$lte": max}}
	return findDocs(ctx, s.col, filter, nil)
}

func (s *MongoProducts) FindFlashSale(ctx context.Context) ([]bson.M, error) {
	return findDocs(ctx, s.col, bson.M{"flashSale": true}, nil)
}

func (s *MongoProducts) FindTopRated(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	return findDocs(ctx, s.col, bson.M{}, opts)
}

func (s *MongoProducts) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	return updateByID(ctx, s.col, id, fields)
}

func (s *MongoProducts) Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// MongoOrders is the MongoDB-backed OrderStore.
type MongoOrders struct {
	col *mongo.Collection
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{col: db.Collection(OrderCollection)}
}

func (s *MongoOrders) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	result, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoOrders) FindAll(ctx context.Context) ([]bson.M, error) {
	return findDocs(ctx, s.col, bson.M{}, nil)
}

func (s *MongoOrders) MarkDelivered(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	return updateByID(ctx, s.col, id, bson.M{"status": models.OrderStatusDelivered})
}

func findDocs(ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]bson.M, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = col.Find(ctx, filter, opts)
	} else {
		cursor, err = col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}

func updateByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
