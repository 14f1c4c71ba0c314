package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"best-menu/menu-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NominatimResolver looks up hotels and restaurants through an OpenStreetMap
// Nominatim compatible search endpoint.
type NominatimResolver struct {
	BaseURL   string
	UserAgent string
	Limit     int
	client    HTTPClient
}

func NewNominatimResolver(baseURL string, client HTTPClient) *NominatimResolver {
	return &NominatimResolver{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: "best-menu/1.0",
		Limit:     5,
		client:    client,
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (r *NominatimResolver) Resolve(ctx context.Context, query, locality string) ([]domain.Place, error) {
	q := strings.TrimSpace(query)
	if loc := strings.TrimSpace(locality); loc != "" {
		q += ", " + loc
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", q)
	params.Set("limit", strconv.Itoa(r.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.UserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search returned status %d", resp.StatusCode)
	}

	var raw []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode places: %w", err)
	}

	places := make([]domain.Place, 0, len(raw))
	for _, p := range raw {
		places = append(places, domain.Place{
			DisplayName: p.DisplayName,
			Latitude:    p.Lat,
			Longitude:   p.Lon,
		})
	}
	return places, nil
}
