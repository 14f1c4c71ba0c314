package service

import (
	"sort"
	"strings"

	"best-menu/menu-svc/internal/domain"
)

const MaxRecommendations = 5

type RecommendationEngine struct {
	restaurants RestaurantRepository
	dishes      DishRepository
	reviews     ReviewRepository
}

func NewRecommendationEngine(restaurants RestaurantRepository, dishes DishRepository, reviews ReviewRepository) *RecommendationEngine {
	return &RecommendationEngine{
		restaurants: restaurants,
		dishes:      dishes,
		reviews:     reviews,
	}
}

// Recommend returns at most MaxRecommendations reviewed dishes of the first
// restaurant whose name contains restaurantQuery, best rated first.
// Unknown restaurants and menu types yield an empty slice, never an error.
func (e *RecommendationEngine) Recommend(restaurantQuery, menuType string) []domain.RankedDish {
	restaurant, ok := e.findRestaurant(restaurantQuery)
	if !ok {
		return []domain.RankedDish{}
	}

	ranked := make([]domain.RankedDish, 0)
	for _, dish := range e.dishes.ListDishes(restaurant.ID) {
		if !strings.EqualFold(string(dish.MenuType), menuType) {
			continue
		}
		reviews := e.reviews.ListDishReviews(dish.ID)
		if len(reviews) == 0 {
			continue
		}
		ranked = append(ranked, rankDish(dish, reviews))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		return ranked[i].ReviewCount > ranked[j].ReviewCount
	})

	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}
	return ranked
}

func (e *RecommendationEngine) findRestaurant(query string) (domain.Restaurant, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return domain.Restaurant{}, false
	}
	for _, rest := range e.restaurants.ListRestaurants() {
		if strings.Contains(strings.ToLower(rest.Name), needle) {
			return rest, true
		}
	}
	return domain.Restaurant{}, false
}

// rankDish expects at least one review.
func rankDish(dish domain.Dish, reviews []domain.Review) domain.RankedDish {
	total := 0
	best := reviews[0]
	for _, rev := range reviews {
		total += rev.Rating
		if rev.Rating > best.Rating {
			best = rev
		}
	}

	return domain.RankedDish{
		ID:            dish.ID,
		Name:          dish.Name,
		Description:   dish.Description,
		AverageRating: float64(total) / float64(len(reviews)),
		ReviewCount:   len(reviews),
		ReviewSummary: best.ReviewText,
	}
}
