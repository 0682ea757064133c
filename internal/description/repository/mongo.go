package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hellodesc/hellodesc/internal/description"
)

// MongoRepo inserts one {name: description} document per record. No index
// or uniqueness constraint is created on the collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// toBSON builds the persisted document; the submitted name is the only key.
func toBSON(rec description.Record) bson.D {
	return bson.D{{Key: rec.Name, Value: rec.Description}}
}

func (m *MongoRepo) Insert(ctx context.Context, rec description.Record) (string, error) {
	res, err := m.col.InsertOne(ctx, toBSON(rec))
	if err != nil {
		return "", err
	}
	return formatID(res.InsertedID), nil
}

func (m *MongoRepo) Backend() string { return "mongo" }

func formatID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
