package repository

import (
	"context"
	"time"

	"foodlover-backend/internal/database"
	"foodlover-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ContactRepo struct {
	collection *mongo.Collection
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{
		collection: database.GetCollection("contacts"),
	}
}

func (r *ContactRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	message.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	message.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindAll returns every contact message, newest first.
func (r *ContactRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// EnsureIndexes creates necessary indexes for the contacts collection
func (r *ContactRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}
