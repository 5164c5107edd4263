package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"parlad-backend/internal/middleware"
	"parlad-backend/internal/models"
	"parlad-backend/internal/services"

	"github.com/gorilla/mux"
)

type FactoryHandler struct {
	Service *services.FactoryService
}

func NewFactoryHandler(s *services.FactoryService) *FactoryHandler {
	return &FactoryHandler{Service: s}
}

// CreateFactory handles POST /api/factories
func (h *FactoryHandler) CreateFactory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateFactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	factory, err := h.Service.CreateFactory(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(factory)
}

// ListFactories handles GET /api/factories
func (h *FactoryHandler) ListFactories(w http.ResponseWriter, r *http.Request) {
	factories, err := h.Service.ListFactories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(factories)
}

// GetFactory handles GET /api/factories/{id}
func (h *FactoryHandler) GetFactory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid factory ID", http.StatusBadRequest)
		return
	}

	factory, err := h.Service.GetFactory(r.Context(), id)
	if err != nil {
		http.Error(w, "Factory not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(factory)
}

// UpdateFactory handles PUT /api/factories/{id}
func (h *FactoryHandler) UpdateFactory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid factory ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateFactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	factory, err := h.Service.UpdateFactory(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(factory)
}

// DeleteFactory handles DELETE /api/factories/{id}
func (h *FactoryHandler) DeleteFactory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid factory ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteFactory(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
