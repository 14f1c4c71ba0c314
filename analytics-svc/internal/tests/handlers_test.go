package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "best-menu/analytics-svc/internal/api/http"
	"best-menu/analytics-svc/internal/domain"
	"best-menu/analytics-svc/internal/mocks"
	"best-menu/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc service.AnalyticsInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(svc, nil).RegisterRoutes(r)
	return r
}

func TestGetTopSearchesHandler(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		prepareMocks func(*mocks.AnalyticsInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name: "success",
			url:  "/api/analytics/top-searches?period=today&limit=5",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopSearches", mock.Anything, "today", 5).
					Return([]domain.SearchStat{{Query: "grand palace", Searches: 3}}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[{"query":"grand palace","searches":3}]`,
		},
		{
			name: "invalid period",
			url:  "/api/analytics/top-searches?period=week",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopSearches", mock.Anything, "week", 0).Return(nil, service.ErrInvalidPeriod).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "redis down degrades to empty",
			url:  "/api/analytics/top-searches",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopSearches", mock.Anything, "", 0).Return(nil, errors.New("connection refused")).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockAnalytics)

			req := httptest.NewRequest(http.MethodGet, testCase.url, nil)
			w := httptest.NewRecorder()
			newTestRouter(mockAnalytics).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetUnmatchedHandler(t *testing.T) {
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	mockAnalytics.On("UnmatchedSearches", mock.Anything, 3).
		Return([]domain.SearchStat{{Query: "nowhere diner", Searches: 2}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/unmatched?limit=3", nil)
	w := httptest.NewRecorder()
	newTestRouter(mockAnalytics).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nowhere diner")
}

func TestGetMenuTypeCountsHandler(t *testing.T) {
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	mockAnalytics.On("MenuTypeCounts", mock.Anything).
		Return([]domain.SearchStat{{Query: "vegan", Searches: 6}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/menu-types", nil)
	w := httptest.NewRecorder()
	newTestRouter(mockAnalytics).ServeHTTP(w, req)

	assert.JSONEq(t, `[{"query":"vegan","searches":6}]`, w.Body.String())
}

func TestGetSummaryHandler(t *testing.T) {
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	mockAnalytics.On("Summary", mock.Anything).Return(domain.SummaryResponse{
		MostSearchedAllTime: &domain.SearchStat{Query: "dosa corner", Searches: 7},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	w := httptest.NewRecorder()
	newTestRouter(mockAnalytics).ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body, "most_searched_all_time")
	assert.NotContains(t, body, "most_searched_today")
}
