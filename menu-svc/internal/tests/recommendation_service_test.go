package tests

import (
	"strconv"
	"testing"

	"best-menu/menu-svc/internal/domain"
	"best-menu/menu-svc/internal/service"
	"best-menu/menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureEngine(t *testing.T) *service.RecommendationEngine {
	t.Helper()
	repo, err := storage.NewFixtureRepository()
	require.NoError(t, err)
	return service.NewRecommendationEngine(repo, repo, repo)
}

func newEngine(t *testing.T, restaurants []domain.Restaurant, dishes []domain.Dish, reviews []domain.Review) *service.RecommendationEngine {
	t.Helper()
	repo, err := storage.NewMemoryRepository(restaurants, dishes, reviews)
	require.NoError(t, err)
	return service.NewRecommendationEngine(repo, repo, repo)
}

func dishNames(dishes []domain.RankedDish) []string {
	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, d.Name)
	}
	return names
}

func TestRecommendationEngine_GrandPalaceBreakfast(t *testing.T) {
	engine := newFixtureEngine(t)

	dishes := engine.Recommend("Grand Palace", "breakfast")

	require.Len(t, dishes, 3)
	assert.Equal(t, []string{"Eggs Benedict Royale", "Berry Pancake Stack", "Avocado Toast Supreme"}, dishNames(dishes))

	assert.InDelta(t, 14.0/3.0, dishes[0].AverageRating, 1e-9)
	assert.Equal(t, 3, dishes[0].ReviewCount)
	assert.Equal(t, "Absolutely perfect! The hollandaise was divine.", dishes[0].ReviewSummary)

	assert.Equal(t, 4.5, dishes[1].AverageRating)
	assert.Equal(t, 2, dishes[1].ReviewCount)
	assert.Equal(t, "Fluffy and delicious, kids loved it!", dishes[1].ReviewSummary)

	assert.Equal(t, 3.5, dishes[2].AverageRating)
	assert.Equal(t, 2, dishes[2].ReviewCount)
	assert.Equal(t, "Fresh ingredients and great presentation.", dishes[2].ReviewSummary)
}

func TestRecommendationEngine_Lookup(t *testing.T) {
	engine := newFixtureEngine(t)

	tests := []struct {
		name      string
		query     string
		menuType  string
		wantNames []string
	}{
		{
			name:      "lunch ordered by rating",
			query:     "Grand Palace",
			menuType:  "lunch",
			wantNames: []string{"Grilled Salmon Caesar", "Truffle Mushroom Risotto"},
		},
		{
			name:      "menu type is case insensitive",
			query:     "grand palace",
			menuType:  "LUNCH",
			wantNames: []string{"Grilled Salmon Caesar", "Truffle Mushroom Risotto"},
		},
		{
			name:      "dishes without reviews are excluded",
			query:     "Grand Palace",
			menuType:  "dinner",
			wantNames: []string{},
		},
		{
			name:      "restaurant without reviewed dishes",
			query:     "Oceanview",
			menuType:  "breakfast",
			wantNames: []string{},
		},
		{
			name:      "unknown restaurant",
			query:     "NonExistentPlace",
			menuType:  "lunch",
			wantNames: []string{},
		},
		{
			name:      "unknown menu type",
			query:     "Grand Palace",
			menuType:  "brunch",
			wantNames: []string{},
		},
		{
			name:      "menu type is not a substring match",
			query:     "Grand Palace",
			menuType:  "break",
			wantNames: []string{},
		},
		{
			name:      "empty query never matches",
			query:     "",
			menuType:  "breakfast",
			wantNames: []string{},
		},
		{
			name:      "whitespace query never matches",
			query:     "   ",
			menuType:  "breakfast",
			wantNames: []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := engine.Recommend(testCase.query, testCase.menuType)
			assert.NotNil(t, dishes)
			assert.Equal(t, testCase.wantNames, dishNames(dishes))
		})
	}
}

func TestRecommendationEngine_CaseInsensitiveRestaurant(t *testing.T) {
	engine := newFixtureEngine(t)

	lower := engine.Recommend("grand palace", "breakfast")
	full := engine.Recommend("Grand Palace Hotel Restaurant", "breakfast")
	upper := engine.Recommend("GRAND PALACE", "breakfast")

	assert.Equal(t, full, lower)
	assert.Equal(t, full, upper)
}

func TestRecommendationEngine_OutputInvariants(t *testing.T) {
	engine := newFixtureEngine(t)
	restaurants, _, _ := storage.Fixtures()

	for _, rest := range restaurants {
		for _, mt := range domain.MenuTypes {
			dishes := engine.Recommend(rest.Name, string(mt))
			assert.LessOrEqual(t, len(dishes), service.MaxRecommendations)
			for i, d := range dishes {
				assert.GreaterOrEqual(t, d.ReviewCount, 1, "%s/%s: %s", rest.Name, mt, d.Name)
				if i == 0 {
					continue
				}
				prev := dishes[i-1]
				ordered := prev.AverageRating > d.AverageRating ||
					(prev.AverageRating == d.AverageRating && prev.ReviewCount >= d.ReviewCount)
				assert.True(t, ordered, "%s/%s: %s before %s", rest.Name, mt, prev.Name, d.Name)
			}
		}
	}
}

func TestRecommendationEngine_FirstMatchingRestaurantWins(t *testing.T) {
	engine := newEngine(t,
		[]domain.Restaurant{
			{ID: "a", Name: "Harbor Grill"},
			{ID: "b", Name: "Harbor Grill Express"},
		},
		[]domain.Dish{
			{ID: "1", Name: "Fish Tacos", MenuType: domain.MenuLunch, RestaurantID: "a"},
			{ID: "2", Name: "Burger", MenuType: domain.MenuLunch, RestaurantID: "b"},
		},
		[]domain.Review{
			{ID: "r1", DishID: "1", Rating: 3, ReviewText: "ok"},
			{ID: "r2", DishID: "2", Rating: 5, ReviewText: "great"},
		},
	)

	assert.Equal(t, []string{"Fish Tacos"}, dishNames(engine.Recommend("harbor", "lunch")))
	assert.Equal(t, []string{"Burger"}, dishNames(engine.Recommend("express", "lunch")))
}

func TestRecommendationEngine_ReviewSummary(t *testing.T) {
	engine := newEngine(t,
		[]domain.Restaurant{{ID: "r", Name: "Summary House"}},
		[]domain.Dish{
			{ID: "late-best", Name: "Late Best", MenuType: domain.MenuDinner, RestaurantID: "r"},
			{ID: "tied", Name: "Tied", MenuType: domain.MenuDinner, RestaurantID: "r"},
		},
		[]domain.Review{
			{ID: "1", DishID: "late-best", Rating: 3, ReviewText: "fine"},
			{ID: "2", DishID: "late-best", Rating: 5, ReviewText: "outstanding"},
			{ID: "3", DishID: "tied", Rating: 5, ReviewText: "first five"},
			{ID: "4", DishID: "tied", Rating: 4, ReviewText: "four"},
			{ID: "5", DishID: "tied", Rating: 5, ReviewText: "second five"},
		},
	)

	dishes := engine.Recommend("summary", "dinner")
	require.Len(t, dishes, 2)

	byName := map[string]domain.RankedDish{}
	for _, d := range dishes {
		byName[d.Name] = d
	}
	assert.Equal(t, "outstanding", byName["Late Best"].ReviewSummary)
	assert.Equal(t, 4.0, byName["Late Best"].AverageRating)
	assert.Equal(t, "first five", byName["Tied"].ReviewSummary)
}

func TestRecommendationEngine_TieBreaksAndTruncation(t *testing.T) {
	restaurants := []domain.Restaurant{{ID: "r", Name: "Tie Bistro"}}
	var dishes []domain.Dish
	var reviews []domain.Review
	addDish := func(name string, ratings ...int) {
		id := strconv.Itoa(len(dishes) + 1)
		dishes = append(dishes, domain.Dish{ID: id, Name: name, MenuType: domain.MenuVegan, RestaurantID: "r"})
		for _, rating := range ratings {
			reviews = append(reviews, domain.Review{
				ID:         strconv.Itoa(len(reviews) + 1),
				DishID:     id,
				Rating:     rating,
				ReviewText: name,
			})
		}
	}

	addDish("Four Once", 4)
	addDish("Four Twice", 4, 4)
	addDish("Five A", 5)
	addDish("Five B", 5)
	addDish("Three", 3)
	addDish("Two", 2)
	addDish("One", 1)
	addDish("Unreviewed")

	engine := newEngine(t, restaurants, dishes, reviews)
	got := engine.Recommend("tie", "vegan")

	assert.Equal(t, []string{"Five A", "Five B", "Four Twice", "Four Once", "Three"}, dishNames(got))
}
