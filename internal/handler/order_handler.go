package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/internal/repository"
	"github.com/shopfront/backend/internal/service"
)

// OrderHandler handles order submission and the order read endpoints.
type OrderHandler struct {
	intake service.IntakeService
	orders repository.OrderRepository
}

// NewOrderHandler creates an OrderHandler with the given intake service and
// order store.
func NewOrderHandler(intake service.IntakeService, orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{intake: intake, orders: orders}
}

// Submit handles POST /api/orders.
// name (or customerName), email and phone are required. The items
// description may be given explicitly or as productName + quantity.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var raw model.RawOrder
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	outcome, err := h.intake.SubmitOrder(r.Context(), raw)
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
		slog.Error("order submission failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Message: "Something went wrong. Please try again later."})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success: true,
		Message: "Order submitted successfully",
		Order:   outcome.Order,
		Warning: outcome.Warning,
	})
}

// orderListResponse is the JSON response for GET /api/orders.
type orderListResponse struct {
	Orders []*model.Order `json:"orders"`
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if orders == nil {
		orders = []*model.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orderListResponse{Orders: orders})
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}
