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

type ProductionHandler struct {
	Service *services.ProductionService
}

func NewProductionHandler(s *services.ProductionService) *ProductionHandler {
	return &ProductionHandler{Service: s}
}

// CreateRecord handles POST /api/production
func (h *ProductionHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.CreateRecord(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// ListRecords handles GET /api/production, optionally filtered by
// ?factory_id=N
func (h *ProductionHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	var (
		records []models.ProductionRecord
		err     error
	)

	if factoryParam := r.URL.Query().Get("factory_id"); factoryParam != "" {
		factoryID, convErr := strconv.Atoi(factoryParam)
		if convErr != nil {
			http.Error(w, "Invalid factory_id", http.StatusBadRequest)
			return
		}
		records, err = h.Service.ListByFactory(r.Context(), factoryID)
	} else {
		records, err = h.Service.ListRecords(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// GetRecord handles GET /api/production/{id}
func (h *ProductionHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	record, err := h.Service.GetRecord(r.Context(), id)
	if err != nil {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// UpdateRecord handles PUT /api/production/{id}
func (h *ProductionHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.UpdateRecord(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// DeleteRecord handles DELETE /api/production/{id}
func (h *ProductionHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRecord(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
