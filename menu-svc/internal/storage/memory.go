package storage

import (
	"errors"
	"fmt"

	"best-menu/menu-svc/internal/domain"
)

var (
	ErrDuplicateRestaurant = errors.New("duplicate restaurant id")
	ErrDuplicateDish       = errors.New("duplicate dish id")
	ErrDuplicateReview     = errors.New("duplicate review id")
	ErrDanglingDish        = errors.New("dish references unknown restaurant")
	ErrDanglingReview      = errors.New("review references unknown dish")
	ErrRatingOutOfRange    = errors.New("review rating must be between 1 and 5")
)

// MemoryRepository serves a snapshot that is never modified after construction.
type MemoryRepository struct {
	restaurants      []domain.Restaurant
	dishesByRest     map[string][]domain.Dish
	reviewsByDish    map[string][]domain.Review
	restaurantsCount int
	dishesCount      int
	reviewsCount     int
}

// NewMemoryRepository indexes the dataset, keeping source order within each
// restaurant and dish, and rejects duplicate ids and records that break
// referential integrity.
func NewMemoryRepository(restaurants []domain.Restaurant, dishes []domain.Dish, reviews []domain.Review) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		restaurants:   append([]domain.Restaurant(nil), restaurants...),
		dishesByRest:  make(map[string][]domain.Dish),
		reviewsByDish: make(map[string][]domain.Review),
	}

	known := make(map[string]bool, len(restaurants))
	for _, rest := range restaurants {
		if known[rest.ID] {
			return nil, fmt.Errorf("restaurant %s: %w", rest.ID, ErrDuplicateRestaurant)
		}
		known[rest.ID] = true
	}

	dishIDs := make(map[string]bool, len(dishes))
	for _, dish := range dishes {
		if dishIDs[dish.ID] {
			return nil, fmt.Errorf("dish %s: %w", dish.ID, ErrDuplicateDish)
		}
		if !known[dish.RestaurantID] {
			return nil, fmt.Errorf("dish %s: %w", dish.ID, ErrDanglingDish)
		}
		dishIDs[dish.ID] = true
		repo.dishesByRest[dish.RestaurantID] = append(repo.dishesByRest[dish.RestaurantID], dish)
	}

	reviewIDs := make(map[string]bool, len(reviews))
	for _, rev := range reviews {
		if reviewIDs[rev.ID] {
			return nil, fmt.Errorf("review %s: %w", rev.ID, ErrDuplicateReview)
		}
		reviewIDs[rev.ID] = true
		if !dishIDs[rev.DishID] {
			return nil, fmt.Errorf("review %s: %w", rev.ID, ErrDanglingReview)
		}
		if rev.Rating < 1 || rev.Rating > 5 {
			return nil, fmt.Errorf("review %s: %w", rev.ID, ErrRatingOutOfRange)
		}
		repo.reviewsByDish[rev.DishID] = append(repo.reviewsByDish[rev.DishID], rev)
	}

	repo.restaurantsCount = len(restaurants)
	repo.dishesCount = len(dishes)
	repo.reviewsCount = len(reviews)
	return repo, nil
}

func (r *MemoryRepository) ListRestaurants() []domain.Restaurant {
	return r.restaurants
}

func (r *MemoryRepository) ListDishes(restaurantID string) []domain.Dish {
	return r.dishesByRest[restaurantID]
}

func (r *MemoryRepository) ListDishReviews(dishID string) []domain.Review {
	return r.reviewsByDish[dishID]
}

// Counts is used for start-up logging.
func (r *MemoryRepository) Counts() (restaurants, dishes, reviews int) {
	return r.restaurantsCount, r.dishesCount, r.reviewsCount
}
