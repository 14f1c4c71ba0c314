package service

import (
	"strings"
	"unicode/utf8"
)

// MinSuggestionLength keeps single-character queries from matching nearly everything.
const MinSuggestionLength = 2

type SuggestionLookup struct {
	restaurants RestaurantRepository
}

func NewSuggestionLookup(restaurants RestaurantRepository) *SuggestionLookup {
	return &SuggestionLookup{restaurants: restaurants}
}

func (l *SuggestionLookup) Suggest(query string) []string {
	names := []string{}
	if utf8.RuneCountInString(query) < MinSuggestionLength {
		return names
	}

	needle := strings.ToLower(query)
	for _, rest := range l.restaurants.ListRestaurants() {
		if strings.Contains(strings.ToLower(rest.Name), needle) {
			names = append(names, rest.Name)
		}
	}
	return names
}
