package repository

import (
	"context"
	"time"

	"foodlover-backend/internal/database"
	"foodlover-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// GoogleUserRepo holds the google-linked account records. These are opaque
// pass-through documents; the handler mirrors each new one into the main
// users collection as well.
type GoogleUserRepo struct {
	collection *mongo.Collection
}

func NewGoogleUserRepo() *GoogleUserRepo {
	return &GoogleUserRepo{
		collection: database.GetCollection("googleusers"),
	}
}

func (r *GoogleUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GoogleUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *GoogleUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
