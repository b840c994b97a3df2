package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"foodlover-backend/internal/models"
	"foodlover-backend/internal/query"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReviewStore is the review persistence surface the handler needs.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Review, error)
	Update(ctx context.Context, id bson.ObjectID, review *models.Review) error
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	Find(ctx context.Context, filter query.Filter, sortKey string, page query.Page) ([]models.Review, int64, error)
	FindByUser(ctx context.Context, email string) ([]models.Review, error)
	FindTopRated(ctx context.Context, limit int) ([]models.Review, error)
	FindRecent(ctx context.Context, limit int) ([]models.Review, error)
}

type ReviewHandler struct {
	reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
	}
}

const (
	topReviewsLimit    = 6
	recentReviewsLimit = 5
)

// --- POST /reviews ---

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if review.FoodName == "" || review.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "foodName and userEmail are required")
		return
	}

	if err := h.reviews.Create(r.Context(), &review); err != nil {
		log.Printf("Error creating review: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// --- GET /reviews ---
// Simple listing: free-text search over food names, newest first, paginated.

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	filter := query.Filter{
		Search:   params.Get("search"),
		NameOnly: true,
	}
	page := query.ParsePage(params.Get("page"), params.Get("limit"), query.DefaultLimit)

	reviews, total, err := h.reviews.Find(r.Context(), filter, "newest", page)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalCount": total,
		"reviews":    reviews,
	})
}

// --- GET /explore ---
// Broader search surface (food name OR restaurant), category/city filters,
// selectable sort, page metadata in the envelope.

func (h *ReviewHandler) Explore(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	filter := query.Filter{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		City:     params.Get("city"),
	}
	page := query.ParsePage(params.Get("page"), params.Get("limit"), query.DefaultLimit)

	reviews, total, err := h.reviews.Find(r.Context(), filter, params.Get("sort"), page)
	if err != nil {
		log.Printf("Error fetching explore data: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load explore data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews":     reviews,
		"total":       total,
		"currentPage": page.Number,
		"totalPages":  page.TotalPages(total),
	})
}

// --- GET /top-reviews ---

func (h *ReviewHandler) TopReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.FindTopRated(r.Context(), topReviewsLimit)
	if err != nil {
		log.Printf("Error fetching top reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch top reviews")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// --- GET /recent-reviews ---

func (h *ReviewHandler) RecentReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.FindRecent(r.Context(), recentReviewsLimit)
	if err != nil {
		log.Printf("Error fetching recent reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recent reviews")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// --- GET /reviews/user/{email} ---

func (h *ReviewHandler) ReviewsByUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	reviews, err := h.reviews.FindByUser(r.Context(), email)
	if err != nil {
		log.Printf("Error fetching reviews for user %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews for this user")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /reviews/{id} ---

func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	review, err := h.reviews.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching review: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch review")
		return
	}
	if review == nil {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// --- PUT /reviews/{id} ---

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	if err := h.reviews.Update(r.Context(), id, &review); err != nil {
		log.Printf("Error updating review: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review updated"})
}

// --- DELETE /reviews/{id} ---

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	deleted, err := h.reviews.Delete(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting review: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
