package repository

import (
	"context"
	"time"

	"foodlover-backend/internal/database"
	"foodlover-backend/internal/models"
	"foodlover-backend/internal/query"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ReviewRepo struct {
	collection *mongo.Collection
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{
		collection: database.GetCollection("reviews"),
	}
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *ReviewRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Update replaces every mutable field of the review (full-field update).
func (r *ReviewRepo) Update(ctx context.Context, id bson.ObjectID, review *models.Review) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"foodName":   review.FoodName,
			"foodImage":  review.FoodImage,
			"restaurant": review.Restaurant,
			"location":   review.Location,
			"city":       review.City,
			"category":   review.Category,
			"rating":     review.Rating,
			"reviewText": review.ReviewText,
			"userEmail":  review.UserEmail,
			"userName":   review.UserName,
			"createdAt":  review.CreatedAt,
		},
	})
	return err
}

func (r *ReviewRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Find runs the review query engine: filter predicate, sort order and a
// skip/limit pair, plus the total count of matches over the full filtered set.
func (r *ReviewRepo) Find(ctx context.Context, filter query.Filter, sortKey string, page query.Page) ([]models.Review, int64, error) {
	predicate := filter.Predicate()

	total, err := r.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(query.Sort(sortKey)).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, 0, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepo) FindByUser(ctx context.Context, email string) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{"userEmail": email}, nil, 0)
}

// FindRecentByUser returns a user's newest reviews, at most limit of them.
func (r *ReviewRepo) FindRecentByUser(ctx context.Context, email string, limit int) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{"userEmail": email}, query.Sort("newest"), int64(limit))
}

// FindTopRated returns the highest-rated reviews, at most limit of them.
func (r *ReviewRepo) FindTopRated(ctx context.Context, limit int) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{}, query.Sort("rating"), int64(limit))
}

// FindRecent returns the newest reviews, at most limit of them.
func (r *ReviewRepo) FindRecent(ctx context.Context, limit int) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{}, query.Sort("newest"), int64(limit))
}

// FindSince returns every review created at or after the given time.
func (r *ReviewRepo) FindSince(ctx context.Context, since time.Time) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{"createdAt": bson.M{"$gte": since}}, nil, 0)
}

func (r *ReviewRepo) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{}, nil, 0)
}

// FindByIDs resolves a set of review ids. Ids with no matching document are
// simply absent from the result.
func (r *ReviewRepo) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil, 0)
}

func (r *ReviewRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ReviewRepo) CountByUser(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userEmail": email})
}

func (r *ReviewRepo) findAll(ctx context.Context, predicate bson.M, sort bson.D, limit int64) ([]models.Review, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// EnsureIndexes creates necessary indexes for the reviews collection
func (r *ReviewRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "rating", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
