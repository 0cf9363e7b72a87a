package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopfront/backend/internal/model"
	"github.com/shopfront/backend/internal/repository"
)

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(repository.NewMemoryUserRepository(repository.SeedUsers()))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp userListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Users) != 3 {
		t.Errorf("expected 3 seeded users, got %d", len(resp.Users))
	}
}

func TestUserHandler_Get(t *testing.T) {
	h := NewUserHandler(repository.NewMemoryUserRepository([]*model.User{
		{ID: 7, Name: "Grace", Email: "grace@example.com", Role: "customer"},
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.User
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "Grace" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h := NewUserHandler(repository.NewMemoryUserRepository(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
