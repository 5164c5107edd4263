package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"parlad-backend/internal/middleware"
	"parlad-backend/internal/models"
	"parlad-backend/internal/services"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// ExportTransactions handles GET /api/ledgers/{id}/report. The filter
// comes from query parameters, ?format=html|pdf picks the output.
func (h *ReportHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	ledgerID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ledger ID", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	filter := models.TransactionFilter{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	report, err := h.Service.Export(r.Context(), userID, ledgerID, filter, q.Get("format"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	w.Write(report.Data)
}
