package domain

import "time"

// SearchEvent is the payload menu-svc publishes on the search topic.
type SearchEvent struct {
	Type            string    `json:"type"`
	RestaurantQuery string    `json:"restaurant_query"`
	MenuType        string    `json:"menu_type"`
	City            string    `json:"city,omitempty"`
	ResultCount     int       `json:"result_count"`
	Source          string    `json:"source"`
	Timestamp       time.Time `json:"timestamp"`
}

const EventSearchPerformed = "search_performed"
