package domain

import (
	"strings"
	"time"
)

type MenuType string

const (
	MenuBreakfast     MenuType = "breakfast"
	MenuLunch         MenuType = "lunch"
	MenuDinner        MenuType = "dinner"
	MenuVegetarian    MenuType = "vegetarian"
	MenuNonVegetarian MenuType = "non-vegetarian"
	MenuVegan         MenuType = "vegan"
	MenuGlutenFree    MenuType = "gluten-free"
)

var MenuTypes = []MenuType{
	MenuBreakfast,
	MenuLunch,
	MenuDinner,
	MenuVegetarian,
	MenuNonVegetarian,
	MenuVegan,
	MenuGlutenFree,
}

// ParseMenuType reports whether s names one of the known menu types,
// ignoring case and surrounding whitespace.
func ParseMenuType(s string) (MenuType, bool) {
	candidate := MenuType(strings.ToLower(strings.TrimSpace(s)))
	for _, mt := range MenuTypes {
		if mt == candidate {
			return mt, true
		}
	}
	return "", false
}

type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Dish struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MenuType     MenuType `json:"menuType"`
	RestaurantID string   `json:"restaurantId"`
}

type Review struct {
	ID         string `json:"id"`
	DishID     string `json:"dishId"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
	UserID     string `json:"userId"`
	Timestamp  string `json:"timestamp"`
}

// RankedDish is computed per query and never stored.
type RankedDish struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
	ReviewSummary string  `json:"reviewSummary"`
}

type Place struct {
	DisplayName string `json:"displayName"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

type SearchRequest struct {
	RestaurantQuery string `json:"restaurantQuery"`
	MenuType        string `json:"menuType"`
	City            string `json:"city,omitempty"`
}

type SearchState string

const (
	StateNotSearched SearchState = "not_searched"
	StateInProgress  SearchState = "in_progress"
	StateCompleted   SearchState = "completed"
)

type SearchSource string

const (
	SourceEngine SearchSource = "engine"
	SourceAI     SearchSource = "ai"
)

type SearchResult struct {
	State          SearchState  `json:"state"`
	RestaurantName string       `json:"restaurantName"`
	MenuType       string       `json:"menuType"`
	Source         SearchSource `json:"source"`
	Dishes         []RankedDish `json:"dishes"`
}

// Status returns the presentation state; a zero SearchResult has not been searched yet.
func (r SearchResult) Status() SearchState {
	if r.State == "" {
		return StateNotSearched
	}
	return r.State
}

type SearchEvent struct {
	Type            string       `json:"type"`
	RestaurantQuery string       `json:"restaurant_query"`
	MenuType        string       `json:"menu_type"`
	City            string       `json:"city,omitempty"`
	ResultCount     int          `json:"result_count"`
	Source          SearchSource `json:"source"`
	Timestamp       time.Time    `json:"timestamp"`
}
