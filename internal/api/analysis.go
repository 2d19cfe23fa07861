package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heliogrid/siterank/internal/catalog"
	"github.com/heliogrid/siterank/internal/mcda"
)

type AnalysisHandler struct {
	analyzer *mcda.Analyzer
	catalog  *catalog.Catalog
}

func NewAnalysisHandler(analyzer *mcda.Analyzer, c *catalog.Catalog) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, catalog: c}
}

// AnalysisResult wraps the engine response with a request-scoped id.
type AnalysisResult struct {
	AnalysisID string `json:"analysis_id"`
	mcda.AnalysisResponse
}

// Create runs one analysis. The caller supplies alternatives with their
// criterion values inline — resolving site records to numbers happens before
// the request reaches this service.
// POST /api/v1/analyses
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mcda.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Method == "" {
		req.Method = mcda.MethodDirect
	}

	start := time.Now()
	resp := h.analyzer.Run(req)
	analysisDuration.Observe(time.Since(start).Seconds())

	result := AnalysisResult{
		AnalysisID:       uuid.NewString(),
		AnalysisResponse: resp,
	}

	if len(resp.ValidationErrors) > 0 {
		analysesTotal.WithLabelValues(string(req.Method), "rejected").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	analysesTotal.WithLabelValues(string(req.Method), "ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

// Criteria lists the criterion catalog so clients can build requests.
// GET /api/v1/criteria
func (h *AnalysisHandler) Criteria(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"criteria": h.catalog.List()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
