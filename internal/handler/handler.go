package handler

import (
	"net/http"

	"github.com/shopfront/backend/internal/model"
)

type Handler struct {
	frontendURL string
}

func New(frontendURL string) *Handler {
	return &Handler{frontendURL: frontendURL}
}

// apiResponse is the JSON envelope returned by the submission endpoints.
type apiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   *model.Order `json:"order,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
