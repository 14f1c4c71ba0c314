package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"best-menu/ai-svc/internal/domain"
	"best-menu/ai-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Provider service.AIRecommendationProvider
	Logger   *zap.Logger
}

func NewHandler(provider service.AIRecommendationProvider, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Provider: provider, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/ai/recommendations", h.generateRecommendations).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "ai-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) generateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	dishes, err := h.Provider.Generate(r.Context(), req.RestaurantName, req.MenuType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("Error in generate-menu-recommendations",
			zap.String("restaurant", req.RestaurantName),
			zap.String("menu_type", req.MenuType),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, domain.RecommendationResponse{Dishes: dishes})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
