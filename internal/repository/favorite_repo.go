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

type FavoriteRepo struct {
	collection *mongo.Collection
}

func NewFavoriteRepo() *FavoriteRepo {
	return &FavoriteRepo{
		collection: database.GetCollection("favorites"),
	}
}

// Toggle flips the (userEmail, reviewID) edge and reports whether it is now
// present. Delete-first avoids a separate existence read; the unique compound
// index turns a lost insert race into a duplicate-key error, which still
// means the edge is present, so the caller gets a truthful answer either way.
func (r *FavoriteRepo) Toggle(ctx context.Context, userEmail, reviewID string) (bool, error) {
	pair := bson.M{"userEmail": userEmail, "reviewId": reviewID}

	result, err := r.collection.DeleteOne(ctx, pair)
	if err != nil {
		return false, err
	}
	if result.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.collection.InsertOne(ctx, models.Favorite{
		UserEmail: userEmail,
		ReviewID:  reviewID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ReviewIDs lists the reviewIds a user has favorited.
func (r *FavoriteRepo) ReviewIDs(ctx context.Context, userEmail string) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, err
	}
	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.ReviewID)
	}
	return ids, nil
}

// Remove deletes one edge. Deleting an absent edge is not an error.
func (r *FavoriteRepo) Remove(ctx context.Context, userEmail, reviewID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userEmail": userEmail, "reviewId": reviewID})
	return err
}

func (r *FavoriteRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *FavoriteRepo) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userEmail": userEmail})
}

// EnsureIndexes creates necessary indexes for the favorites collection. The
// unique compound index is what keeps the toggle race-safe.
func (r *FavoriteRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "reviewId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
