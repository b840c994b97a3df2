package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"foodlover-backend/internal/models"
	"foodlover-backend/internal/notify"

	"github.com/google/uuid"
)

type ContactStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

type ContactHandler struct {
	contacts ContactStore
	notifier notify.Notifier
}

func NewContactHandler(contacts ContactStore, notifier notify.Notifier) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		notifier: notifier,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// --- POST /contact ---

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	message := &models.ContactMessage{
		TicketID: uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}

	if err := h.contacts.Create(r.Context(), message); err != nil {
		log.Printf("Error saving contact message: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	// Notify in a background goroutine (non-blocking, best-effort)
	go func() {
		subject := fmt.Sprintf("New contact message from %s", req.Name)
		body := fmt.Sprintf("Ticket: %s\nFrom: %s <%s>\nSubject: %s\n\n%s",
			message.TicketID, req.Name, req.Email, req.Subject, req.Message)
		if err := h.notifier.Publish(context.Background(), subject, body); err != nil {
			log.Printf("Error publishing contact notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "Message saved successfully",
		"ticketId": message.TicketID,
	})
}
