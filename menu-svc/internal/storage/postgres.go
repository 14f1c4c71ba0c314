package storage

import (
	"database/sql"
	"fmt"

	"best-menu/menu-svc/internal/domain"
)

// PostgresLoader reads the dataset once; the service never writes to it.
// A row that cannot be scanned aborts the load.
type PostgresLoader struct {
	DB *sql.DB
}

func NewPostgresLoader(db *sql.DB) *PostgresLoader {
	return &PostgresLoader{DB: db}
}

func (l *PostgresLoader) LoadRestaurants() ([]domain.Restaurant, error) {
	rows, err := l.DB.Query(`
		SELECT id, name
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name); err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (l *PostgresLoader) LoadDishes() ([]domain.Dish, error) {
	rows, err := l.DB.Query(`
		SELECT id, name, COALESCE(description, ''), menu_type, restaurant_id
		FROM dishes
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		var menuType string
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &menuType, &dish.RestaurantID); err != nil {
			return nil, fmt.Errorf("scan dish row: %w", err)
		}
		dish.MenuType = domain.MenuType(menuType)
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (l *PostgresLoader) LoadReviews() ([]domain.Review, error) {
	rows, err := l.DB.Query(`
		SELECT id, dish_id, rating, COALESCE(review_text, ''), COALESCE(user_id, ''),
		       COALESCE(to_char(created_at, 'YYYY-MM-DD'), '')
		FROM reviews
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.DishID, &rev.Rating, &rev.ReviewText, &rev.UserID, &rev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// LoadSnapshot reads all three tables and freezes them into a MemoryRepository.
func (l *PostgresLoader) LoadSnapshot() (*MemoryRepository, error) {
	restaurants, err := l.LoadRestaurants()
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	dishes, err := l.LoadDishes()
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	reviews, err := l.LoadReviews()
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return NewMemoryRepository(restaurants, dishes, reviews)
}

func (l *PostgresLoader) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT,
			menu_type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			review_text TEXT,
			user_id TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := l.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
