package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"foodlover-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// FavoriteStore is the favorite-edge persistence surface the handler needs.
type FavoriteStore interface {
	Toggle(ctx context.Context, userEmail, reviewID string) (added bool, err error)
	ReviewIDs(ctx context.Context, userEmail string) ([]string, error)
	Remove(ctx context.Context, userEmail, reviewID string) error
}

// ReviewResolver resolves favorite edges into full review documents.
type ReviewResolver interface {
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Review, error)
}

type FavoriteHandler struct {
	favorites FavoriteStore
	reviews   ReviewResolver
}

func NewFavoriteHandler(favorites FavoriteStore, reviews ReviewResolver) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		reviews:   reviews,
	}
}

type toggleFavoriteRequest struct {
	UserEmail string `json:"userEmail"`
}

// --- POST /reviews/favorite/{reviewID} ---

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	var req toggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "User email required")
		return
	}

	added, err := h.favorites.Toggle(r.Context(), req.UserEmail, reviewID)
	if err != nil {
		log.Printf("Error toggling favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	message := "Removed from favorites"
	if added {
		message = "Added to favorites"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// --- GET /reviews/favorites/{userEmail} ---

func (h *FavoriteHandler) FavoriteIDs(w http.ResponseWriter, r *http.Request) {
	userEmail := chi.URLParam(r, "userEmail")

	ids, err := h.favorites.ReviewIDs(r.Context(), userEmail)
	if err != nil {
		log.Printf("Error fetching favorites: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

// --- GET /favorites/{email} ---
// Resolves the user's favorite edges into full review documents. Edges whose
// review was deleted, or whose stored id is not valid hex, are dropped.

func (h *FavoriteHandler) FavoriteReviews(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ids, err := h.favorites.ReviewIDs(r.Context(), email)
	if err != nil {
		log.Printf("Error loading favorites for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}

	objectIDs := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	reviews, err := h.reviews.FindByIDs(r.Context(), objectIDs)
	if err != nil {
		log.Printf("Error resolving favorite reviews for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- DELETE /favorites/{reviewID}?userEmail= ---

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")
	userEmail := r.URL.Query().Get("userEmail")
	if userEmail == "" {
		writeError(w, http.StatusBadRequest, "User email required")
		return
	}

	// Idempotent: removing an absent edge is still a success.
	if err := h.favorites.Remove(r.Context(), userEmail, reviewID); err != nil {
		log.Printf("Error removing favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}
