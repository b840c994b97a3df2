package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"foodlover-backend/internal/models"
	"foodlover-backend/internal/query"
	"foodlover-backend/internal/stats"

	"github.com/go-chi/chi/v5"
)

// ReviewStatsStore is the read surface the dashboard aggregations fold over.
type ReviewStatsStore interface {
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, email string) (int64, error)
	FindByUser(ctx context.Context, email string) ([]models.Review, error)
	FindSince(ctx context.Context, since time.Time) ([]models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	FindRecent(ctx context.Context, limit int) ([]models.Review, error)
	FindRecentByUser(ctx context.Context, email string, limit int) ([]models.Review, error)
}

type FavoriteCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, email string) (int64, error)
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type ContactReader interface {
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
}

type DashboardHandler struct {
	reviews   ReviewStatsStore
	favorites FavoriteCounter
	users     UserCounter
	contacts  ContactReader
}

func NewDashboardHandler(reviews ReviewStatsStore, favorites FavoriteCounter, users UserCounter, contacts ContactReader) *DashboardHandler {
	return &DashboardHandler{
		reviews:   reviews,
		favorites: favorites,
		users:     users,
		contacts:  contacts,
	}
}

// monthlyWindow is the trailing window of the admin-stats time series.
const monthlyWindow = 6 // months

const topRestaurantsLimit = 5

// --- GET /dashboard/user-stats/{email} ---

func (h *DashboardHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	reviewCount, err := h.reviews.CountByUser(r.Context(), email)
	if err != nil {
		log.Printf("Error counting reviews for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return
	}

	favoriteCount, err := h.favorites.CountByUser(r.Context(), email)
	if err != nil {
		log.Printf("Error counting favorites for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return
	}

	userReviews, err := h.reviews.FindByUser(r.Context(), email)
	if err != nil {
		log.Printf("Error loading reviews for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalReviews":       reviewCount,
		"totalFavorites":     favoriteCount,
		"ratingDistribution": stats.RatingDistribution(userReviews),
	})
}

// --- GET /dashboard/admin-stats ---

func (h *DashboardHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	totalUsers, err := h.users.Count(r.Context())
	if err != nil {
		log.Printf("Error counting users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}

	totalReviews, err := h.reviews.Count(r.Context())
	if err != nil {
		log.Printf("Error counting reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}

	totalFavorites, err := h.favorites.Count(r.Context())
	if err != nil {
		log.Printf("Error counting favorites: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}

	since := time.Now().AddDate(0, -monthlyWindow, 0)
	recent, err := h.reviews.FindSince(r.Context(), since)
	if err != nil {
		log.Printf("Error loading recent reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalUsers":     totalUsers,
		"totalReviews":   totalReviews,
		"totalFavorites": totalFavorites,
		"monthlyData":    stats.MonthlyCounts(recent),
	})
}

// --- GET /dashboard/top-restaurants/{email} ---

func (h *DashboardHandler) TopRestaurants(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	userReviews, err := h.reviews.FindByUser(r.Context(), email)
	if err != nil {
		log.Printf("Error loading reviews for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch top restaurants")
		return
	}

	writeJSON(w, http.StatusOK, stats.TopRestaurants(userReviews, topRestaurantsLimit))
}

// --- GET /dashboard/recent-reviews/{email}?limit= ---

func (h *DashboardHandler) RecentReviewsByUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	page := query.ParsePage("1", r.URL.Query().Get("limit"), recentReviewsLimit)

	reviews, err := h.reviews.FindRecentByUser(r.Context(), email, page.Limit)
	if err != nil {
		log.Printf("Error loading recent reviews for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recent reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /dashboard/admin-rating-distribution ---

func (h *DashboardHandler) AdminRatingDistribution(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.FindAll(r.Context())
	if err != nil {
		log.Printf("Error loading reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load rating distribution")
		return
	}
	writeJSON(w, http.StatusOK, stats.RatingDistribution(reviews))
}

// --- GET /dashboard/admin-reviews-over-time ---

func (h *DashboardHandler) AdminReviewsOverTime(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.FindAll(r.Context())
	if err != nil {
		log.Printf("Error loading reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load review trends")
		return
	}
	writeJSON(w, http.StatusOK, stats.MonthlyCounts(reviews))
}

// --- GET /dashboard/admin-recent-reviews ---

func (h *DashboardHandler) AdminRecentReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.FindRecent(r.Context(), recentReviewsLimit)
	if err != nil {
		log.Printf("Error loading recent reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recent reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /dashboard/contact-messages ---

func (h *DashboardHandler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contacts.FindAll(r.Context())
	if err != nil {
		log.Printf("Error loading contact messages: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
