// Package handlers holds the HTTP handlers for the read API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wonny/hunter/internal/report"
	"github.com/wonny/hunter/pkg/logger"
)

// ReportHandler serves the latest valuation report
type ReportHandler struct {
	store  *report.Store
	logger *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(store *report.Store, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		store:  store,
		logger: log,
	}
}

// GetLatest returns the latest report as JSON
// GET /api/report/latest
func (h *ReportHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	latest := h.store.Latest()
	if latest == nil {
		writeError(w, http.StatusNotFound, "no report available yet")
		return
	}

	writeJSON(w, latest)
}

// GetLatestCSV returns the latest report as a CSV download, the same bytes
// the artifact file carries
// GET /api/report/latest.csv
func (h *ReportHandler) GetLatestCSV(w http.ResponseWriter, r *http.Request) {
	latest := h.store.Latest()
	if latest == nil {
		writeError(w, http.StatusNotFound, "no report available yet")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "nasdaq100_valuations_"+latest.AsOfDate+".csv"))

	if err := report.Encode(w, latest); err != nil {
		h.logger.WithError(err).Error("Failed to stream report CSV")
	}
}

// GetSummary returns aggregate verdict and tier counts
// GET /api/report/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.store.Summarize()
	if summary == nil {
		writeError(w, http.StatusNotFound, "no report available yet")
		return
	}

	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
