package handlers

import (
	"context"
	"sort"
	"time"

	"foodlover-backend/internal/models"
	"foodlover-backend/internal/query"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeReviews is an in-memory ReviewStore/ReviewResolver/ReviewStatsStore.
// Find records the parameters it was called with and serves canned results,
// so tests can assert on the query the handler built.
type fakeReviews struct {
	reviews []models.Review
	total   int64
	err     error

	lastFilter query.Filter
	lastSort   string
	lastPage   query.Page
}

func (f *fakeReviews) Create(ctx context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	review.ID = bson.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviews) FindByID(ctx context.Context, id bson.ObjectID) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReviews) Update(ctx context.Context, id bson.ObjectID, review *models.Review) error {
	return f.err
}

func (f *fakeReviews) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviews) Find(ctx context.Context, filter query.Filter, sortKey string, page query.Page) ([]models.Review, int64, error) {
	f.lastFilter = filter
	f.lastSort = sortKey
	f.lastPage = page
	if f.err != nil {
		return nil, 0, f.err
	}

	total := f.total
	if total == 0 {
		total = int64(len(f.reviews))
	}
	skip := int(page.Skip())
	if skip > len(f.reviews) {
		skip = len(f.reviews)
	}
	end := skip + page.Limit
	if end > len(f.reviews) {
		end = len(f.reviews)
	}
	return f.reviews[skip:end], total, nil
}

func (f *fakeReviews) FindByUser(ctx context.Context, email string) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Review{}
	for _, review := range f.reviews {
		if review.UserEmail == email {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviews) FindRecentByUser(ctx context.Context, email string, limit int) ([]models.Review, error) {
	out, err := f.FindByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviews) FindTopRated(ctx context.Context, limit int) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Review{}, f.reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviews) FindRecent(ctx context.Context, limit int) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Review{}, f.reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviews) FindSince(ctx context.Context, since time.Time) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Review{}
	for _, review := range f.reviews {
		if !review.CreatedAt.Before(since) {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviews) FindAll(ctx context.Context) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Review{}, f.reviews...), nil
}

func (f *fakeReviews) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Review{}
	for _, review := range f.reviews {
		for _, id := range ids {
			if review.ID == id {
				out = append(out, review)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReviews) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.reviews)), nil
}

func (f *fakeReviews) CountByUser(ctx context.Context, email string) (int64, error) {
	out, err := f.FindByUser(ctx, email)
	if err != nil {
		return 0, err
	}
	return int64(len(out)), nil
}

// fakeFavorites is an in-memory FavoriteStore/FavoriteCounter with real
// toggle semantics over a (userEmail, reviewID) set.
type fakeFavorites struct {
	edges map[string]map[string]bool
	err   error
}

func newFakeFavorites() *fakeFavorites {
	return &fakeFavorites{edges: make(map[string]map[string]bool)}
}

func (f *fakeFavorites) Toggle(ctx context.Context, userEmail, reviewID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.edges[userEmail] == nil {
		f.edges[userEmail] = make(map[string]bool)
	}
	if f.edges[userEmail][reviewID] {
		delete(f.edges[userEmail], reviewID)
		return false, nil
	}
	f.edges[userEmail][reviewID] = true
	return true, nil
}

func (f *fakeFavorites) ReviewIDs(ctx context.Context, userEmail string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := []string{}
	for id := range f.edges[userEmail] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeFavorites) Remove(ctx context.Context, userEmail, reviewID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.edges[userEmail], reviewID)
	return nil
}

func (f *fakeFavorites) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, set := range f.edges {
		n += int64(len(set))
	}
	return n, nil
}

func (f *fakeFavorites) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.edges[userEmail])), nil
}

type fakeUsers struct {
	count int64
	err   error
}

func (f *fakeUsers) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

type fakeContacts struct {
	messages []models.ContactMessage
	err      error
}

func (f *fakeContacts) Create(ctx context.Context, message *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	message.CreatedAt = time.Now()
	message.ID = bson.NewObjectID()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeContacts) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.ContactMessage{}, f.messages...), nil
}
