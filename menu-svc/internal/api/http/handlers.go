package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"best-menu/menu-svc/internal/domain"
	"best-menu/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Search service.SearchServiceInterface
	QR     service.QRGenerator
	Logger *zap.Logger
}

func NewHandler(search service.SearchServiceInterface, qr service.QRGenerator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Search: search,
		QR:     qr,
		Logger: logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu-types", h.getMenuTypes).Methods("GET")
	r.HandleFunc("/api/restaurants/suggestions", h.getSuggestions).Methods("GET")
	r.HandleFunc("/api/recommendations", h.getRecommendations).Methods("GET")
	r.HandleFunc("/api/recommendations", h.postRecommendations).Methods("POST")
	r.HandleFunc("/api/recommendations/qrcode", h.getShareQRCode).Methods("GET")
	r.HandleFunc("/api/places", h.getPlaces).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenuTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.MenuTypes)
}

func (h *Handler) getSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Search.Suggest(r.URL.Query().Get("q")))
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.search(w, r, domain.SearchRequest{
		RestaurantQuery: query.Get("restaurant"),
		MenuType:        query.Get("menuType"),
		City:            query.Get("city"),
	})
}

func (h *Handler) postRecommendations(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	h.search(w, r, req)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, req domain.SearchRequest) {
	result, err := h.Search.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSearch) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getShareQRCode(w http.ResponseWriter, r *http.Request) {
	restaurant := r.URL.Query().Get("restaurant")
	menuType := r.URL.Query().Get("menuType")
	if restaurant == "" || menuType == "" {
		writeError(w, http.StatusBadRequest, service.ErrInvalidSearch.Error())
		return
	}

	png, err := h.QR.Generate(restaurant, menuType)
	if err != nil {
		h.Logger.Error("qr generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "QR code generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "Missing q")
		return
	}

	places, err := h.Search.ResolvePlaces(r.Context(), q, r.URL.Query().Get("city"))
	if err != nil {
		if errors.Is(err, service.ErrPlacesDisabled) {
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}
		h.Logger.Warn("place lookup failed", zap.String("q", q), zap.Error(err))
		writeError(w, http.StatusBadGateway, "Place lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, places)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
