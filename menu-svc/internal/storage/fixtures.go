package storage

import "best-menu/menu-svc/internal/domain"

// Fixtures returns the bundled demo dataset.
func Fixtures() ([]domain.Restaurant, []domain.Dish, []domain.Review) {
	restaurants := []domain.Restaurant{
		{ID: "1", Name: "Grand Palace Hotel Restaurant"},
		{ID: "2", Name: "Oceanview Resort Dining"},
	}

	dishes := []domain.Dish{
		{ID: "1", Name: "Eggs Benedict Royale", Description: "Poached eggs on English muffins with smoked salmon and hollandaise sauce", MenuType: domain.MenuBreakfast, RestaurantID: "1"},
		{ID: "2", Name: "Avocado Toast Supreme", Description: "Multigrain toast topped with smashed avocado, cherry tomatoes, and feta cheese", MenuType: domain.MenuBreakfast, RestaurantID: "1"},
		{ID: "3", Name: "Berry Pancake Stack", Description: "Fluffy pancakes with fresh berries, maple syrup, and whipped cream", MenuType: domain.MenuBreakfast, RestaurantID: "1"},
		{ID: "4", Name: "Grilled Salmon Caesar", Description: "Fresh Atlantic salmon over crisp romaine with parmesan and house-made croutons", MenuType: domain.MenuLunch, RestaurantID: "1"},
		{ID: "5", Name: "Truffle Mushroom Risotto", Description: "Creamy arborio rice with wild mushrooms and truffle oil", MenuType: domain.MenuLunch, RestaurantID: "1"},
		{ID: "6", Name: "Wagyu Beef Tenderloin", Description: "Premium wagyu beef with roasted vegetables and red wine reduction", MenuType: domain.MenuDinner, RestaurantID: "1"},
		{ID: "7", Name: "Lobster Thermidor", Description: "Fresh lobster in cognac cream sauce with gruyere cheese", MenuType: domain.MenuDinner, RestaurantID: "1"},
		{ID: "8", Name: "Quinoa Buddha Bowl", Description: "Organic quinoa with roasted vegetables, chickpeas, and tahini dressing", MenuType: domain.MenuVegetarian, RestaurantID: "1"},
		{ID: "9", Name: "Tropical Acai Bowl", Description: "Acai puree topped with granola, fresh fruits, and coconut flakes", MenuType: domain.MenuBreakfast, RestaurantID: "2"},
		{ID: "10", Name: "Coconut French Toast", Description: "Brioche French toast with coconut cream and tropical fruit compote", MenuType: domain.MenuBreakfast, RestaurantID: "2"},
		{ID: "11", Name: "Catch of the Day", Description: "Fresh local fish grilled with lemon herbs and seasonal vegetables", MenuType: domain.MenuLunch, RestaurantID: "2"},
		{ID: "12", Name: "Poke Bowl", Description: "Fresh tuna poke with sushi rice, edamame, and wasabi aioli", MenuType: domain.MenuLunch, RestaurantID: "2"},
		{ID: "13", Name: "Surf and Turf", Description: "Grilled lobster tail and beef filet with garlic butter", MenuType: domain.MenuDinner, RestaurantID: "2"},
		{ID: "14", Name: "Plant-Based Pad Thai", Description: "Rice noodles with tofu, vegetables, and coconut-based sauce", MenuType: domain.MenuVegan, RestaurantID: "2"},
		{ID: "15", Name: "Grilled Chicken Salad", Description: "Free-range chicken breast with mixed greens and gluten-free dressing", MenuType: domain.MenuGlutenFree, RestaurantID: "2"},
	}

	reviews := []domain.Review{
		{ID: "1", DishID: "1", Rating: 5, ReviewText: "Absolutely perfect! The hollandaise was divine.", UserID: "user1", Timestamp: "2024-01-15"},
		{ID: "2", DishID: "1", Rating: 4, ReviewText: "Great dish, salmon was fresh and delicious.", UserID: "user2", Timestamp: "2024-01-16"},
		{ID: "3", DishID: "1", Rating: 5, ReviewText: "Best eggs benedict I've ever had!", UserID: "user3", Timestamp: "2024-01-17"},
		{ID: "4", DishID: "2", Rating: 4, ReviewText: "Fresh ingredients and great presentation.", UserID: "user4", Timestamp: "2024-01-18"},
		{ID: "5", DishID: "2", Rating: 3, ReviewText: "Good but a bit overpriced.", UserID: "user5", Timestamp: "2024-01-19"},
		{ID: "6", DishID: "3", Rating: 5, ReviewText: "Fluffy and delicious, kids loved it!", UserID: "user6", Timestamp: "2024-01-20"},
		{ID: "7", DishID: "3", Rating: 4, ReviewText: "Great portion size and fresh berries.", UserID: "user7", Timestamp: "2024-01-21"},
		{ID: "8", DishID: "4", Rating: 5, ReviewText: "Perfect salmon, cooked to perfection.", UserID: "user8", Timestamp: "2024-01-22"},
		{ID: "9", DishID: "4", Rating: 4, ReviewText: "Fresh and tasty, would order again.", UserID: "user9", Timestamp: "2024-01-23"},
		{ID: "10", DishID: "5", Rating: 4, ReviewText: "Rich and creamy, amazing truffle aroma.", UserID: "user10", Timestamp: "2024-01-24"},
	}

	return restaurants, dishes, reviews
}

func NewFixtureRepository() (*MemoryRepository, error) {
	return NewMemoryRepository(Fixtures())
}
