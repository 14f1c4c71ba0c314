package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"best-menu/analytics-svc/internal/domain"
	"best-menu/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Logger    *zap.Logger
}

func NewHandler(svc service.AnalyticsInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Analytics: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-searches", h.getTopSearches).Methods("GET")
	r.HandleFunc("/api/analytics/menu-types", h.getMenuTypeCounts).Methods("GET")
	r.HandleFunc("/api/analytics/unmatched", h.getUnmatched).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.getSummary).Methods("GET")
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

func (h *Handler) getTopSearches(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopSearches(r.Context(), r.URL.Query().Get("period"), limitParam(r))
	if errors.Is(err, service.ErrInvalidPeriod) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.writeStats(w, data, err)
}

func (h *Handler) getMenuTypeCounts(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.MenuTypeCounts(r.Context())
	h.writeStats(w, data, err)
}

func (h *Handler) getUnmatched(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.UnmatchedSearches(r.Context(), limitParam(r))
	h.writeStats(w, data, err)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Analytics.Summary(r.Context()))
}

// writeStats degrades to an empty list when Redis is unavailable.
func (h *Handler) writeStats(w http.ResponseWriter, data []domain.SearchStat, err error) {
	if err != nil {
		h.Logger.Warn("analytics read failed", zap.Error(err))
		data = nil
	}
	if data == nil {
		data = []domain.SearchStat{}
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
