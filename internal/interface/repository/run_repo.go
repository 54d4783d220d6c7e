package repository

import (
	"context"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRunRepository implements RunRepository
type MongoRunRepository struct {
	collection *mongo.Collection
}

// NewMongoRunRepository creates a new pipeline run repository
func NewMongoRunRepository(db *mongo.Database) repository.RunRepository {
	collection := db.Collection("pipeline_runs")

	// Index for latest-run lookups per hotel
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "hotelCode", Value: 1},
			{Key: "startTime", Value: -1},
		},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoRunRepository{
		collection: collection,
	}
}

// Save persists one pipeline run result
func (r *MongoRunRepository) Save(ctx context.Context, result *entity.RunResult) error {
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

// FindLatestByHotel returns the most recent run for a hotel
func (r *MongoRunRepository) FindLatestByHotel(ctx context.Context, hotelCode string) (*entity.RunResult, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "startTime", Value: -1}})

	var result entity.RunResult
	err := r.collection.FindOne(ctx, bson.M{"hotelCode": hotelCode}, opts).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
