package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"foodlover-backend/internal/models"
	"foodlover-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler covers the pass-through account endpoints. These carry no core
// logic; records are stored as submitted apart from password hashing and
// role/createdAt defaulting.
type UserHandler struct {
	users       *repository.UserRepo
	googleUsers *repository.GoogleUserRepo
}

func NewUserHandler(users *repository.UserRepo, googleUsers *repository.GoogleUserRepo) *UserHandler {
	return &UserHandler{
		users:       users,
		googleUsers: googleUsers,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL"`
}

// --- POST /users ---

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error checking existing user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "user already exists",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		PhotoURL: req.PhotoURL,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		log.Printf("Error creating user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// --- GET /users ---

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type googleRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// --- POST /google-users ---
// Google-linked accounts are stored in their own collection and mirrored into
// the main users collection.

func (h *UserHandler) RegisterGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	existing, err := h.googleUsers.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error checking existing google user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "user already exists",
		})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	if err := h.googleUsers.Create(r.Context(), user); err != nil {
		log.Printf("Error creating google user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	mirror := *user
	mirror.ID = bson.NilObjectID
	if err := h.users.Create(r.Context(), &mirror); err != nil {
		// The google record is in; mirroring is then best-effort.
		log.Printf("Error mirroring google user into users: %v", err)
	}

	writeJSON(w, http.StatusCreated, user)
}

// --- GET /google-users ---

func (h *UserHandler) ListGoogleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.googleUsers.FindAll(r.Context())
	if err != nil {
		log.Printf("Error fetching google users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}
