package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/internal/repository"
	"github.com/shopfront/backend/internal/service"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	intake   service.IntakeService
	contacts repository.ContactRepository
}

// NewContactHandler creates a ContactHandler with the given intake service
// and contact store.
func NewContactHandler(intake service.IntakeService, contacts repository.ContactRepository) *ContactHandler {
	return &ContactHandler{intake: intake, contacts: contacts}
}

// Submit handles POST /api/contact.
// name, email and message are required; phone is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var raw model.RawContact
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	outcome, err := h.intake.SubmitContact(r.Context(), raw)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(apiResponse{
				Success: false,
				Message: "Missing required fields: " + strings.Join(verr.Missing, ", "),
			})
			return
		}
		slog.Error("contact submission failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Message: "Something went wrong. Please try again later."})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Warning: outcome.Warning,
	})
}

// contactListResponse is the JSON response for GET /api/contacts.
type contactListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contacts.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contactListResponse{Messages: messages})
}
