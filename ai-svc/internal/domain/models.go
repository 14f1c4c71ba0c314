package domain

type RecommendationRequest struct {
	RestaurantName string `json:"restaurantName"`
	MenuType       string `json:"menuType"`
}

// Dish mirrors the ranked dish shape of menu-svc so the frontend renders both
// sources with the same card.
type Dish struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
	ReviewSummary string  `json:"reviewSummary"`
}

type RecommendationResponse struct {
	Dishes []Dish `json:"dishes"`
}
