package service

import (
	"context"

	"best-menu/menu-svc/internal/domain"
	"best-menu/menu-svc/internal/storage"
)

// Repositories are read-only views over a dataset loaded at start-up.
// List methods return entities in source order.
type RestaurantRepository interface {
	ListRestaurants() []domain.Restaurant
}

type DishRepository interface {
	ListDishes(restaurantID string) []domain.Dish
}

type ReviewRepository interface {
	ListDishReviews(dishID string) []domain.Review
}

type RecommendationEngineInterface interface {
	Recommend(restaurantQuery, menuType string) []domain.RankedDish
}

type SuggestionLookupInterface interface {
	Suggest(query string) []string
}

type SearchServiceInterface interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
	Suggest(query string) []string
	ResolvePlaces(ctx context.Context, query, locality string) ([]domain.Place, error)
}

type PlaceResolver interface {
	Resolve(ctx context.Context, query, locality string) ([]domain.Place, error)
}

type SearchEventPublisher interface {
	PublishSearch(ctx context.Context, event domain.SearchEvent) error
}

type QRGenerator interface {
	Generate(restaurantQuery, menuType string) ([]byte, error)
}

var (
	_ RecommendationEngineInterface = (*RecommendationEngine)(nil)
	_ SuggestionLookupInterface     = (*SuggestionLookup)(nil)
	_ SearchServiceInterface        = (*SearchService)(nil)

	_ RestaurantRepository = (*storage.MemoryRepository)(nil)
	_ DishRepository       = (*storage.MemoryRepository)(nil)
	_ ReviewRepository     = (*storage.MemoryRepository)(nil)
	_ PlaceResolver        = (*storage.NominatimResolver)(nil)
	_ SearchEventPublisher = (*storage.KafkaPublisher)(nil)
	_ QRGenerator          = DefaultQRGenerator{}
)
