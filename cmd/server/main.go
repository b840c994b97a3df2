package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"foodlover-backend/internal/database"
	"foodlover-backend/internal/handlers"
	"foodlover-backend/internal/notify"
	"foodlover-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "foodLoverDb")
	port := getEnv("PORT", "8080")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	reviewRepo := repository.NewReviewRepo()
	favoriteRepo := repository.NewFavoriteRepo()
	userRepo := repository.NewUserRepo()
	googleUserRepo := repository.NewGoogleUserRepo()
	contactRepo := repository.NewContactRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create review indexes: %v", err)
	}
	if err := favoriteRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create favorite indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := contactRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create contact indexes: %v", err)
	}

	// Contact notifications go out by email when Resend is configured,
	// otherwise to the log.
	var notifier notify.Notifier
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		notifier = notify.NewEmailNotifier(apiKey, getEnv("FROM_EMAIL", ""), getEnv("CONTACT_NOTIFY_EMAIL", ""))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, contact notifications go to the log")
		notifier = notify.NewMockNotifier()
	}

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, reviewRepo)
	dashboardHandler := handlers.NewDashboardHandler(reviewRepo, favoriteRepo, userRepo, contactRepo)
	contactHandler := handlers.NewContactHandler(contactRepo, notifier)
	userHandler := handlers.NewUserHandler(userRepo, googleUserRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"foodlover-backend"}`))
	})

	// Reviews
	r.Post("/reviews", reviewHandler.CreateReview)
	r.Get("/reviews", reviewHandler.ListReviews)
	r.Get("/reviews/user/{email}", reviewHandler.ReviewsByUser)
	r.Get("/reviews/{id}", reviewHandler.GetReview)
	r.Put("/reviews/{id}", reviewHandler.UpdateReview)
	r.Delete("/reviews/{id}", reviewHandler.DeleteReview)
	r.Get("/explore", reviewHandler.Explore)
	r.Get("/top-reviews", reviewHandler.TopReviews)
	r.Get("/recent-reviews", reviewHandler.RecentReviews)

	// Favorites
	r.Post("/reviews/favorite/{reviewID}", favoriteHandler.ToggleFavorite)
	r.Get("/reviews/favorites/{userEmail}", favoriteHandler.FavoriteIDs)
	r.Get("/favorites/{email}", favoriteHandler.FavoriteReviews)
	r.Delete("/favorites/{reviewID}", favoriteHandler.RemoveFavorite)

	// Dashboards
	r.Get("/dashboard/user-stats/{email}", dashboardHandler.UserStats)
	r.Get("/dashboard/admin-stats", dashboardHandler.AdminStats)
	r.Get("/dashboard/top-restaurants/{email}", dashboardHandler.TopRestaurants)
	r.Get("/dashboard/recent-reviews/{email}", dashboardHandler.RecentReviewsByUser)
	r.Get("/dashboard/admin-rating-distribution", dashboardHandler.AdminRatingDistribution)
	r.Get("/dashboard/admin-reviews-over-time", dashboardHandler.AdminReviewsOverTime)
	r.Get("/dashboard/admin-recent-reviews", dashboardHandler.AdminRecentReviews)
	r.Get("/dashboard/contact-messages", dashboardHandler.ContactMessages)

	// Users & contact
	r.Post("/users", userHandler.Register)
	r.Get("/users", userHandler.ListUsers)
	r.Post("/google-users", userHandler.RegisterGoogle)
	r.Get("/google-users", userHandler.ListGoogleUsers)
	r.Post("/contact", contactHandler.SubmitContact)

	// Start server
	log.Printf("🚀 FoodLover backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
