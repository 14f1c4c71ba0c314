package storage

import (
	"errors"
	"regexp"
	"testing"

	"best-menu/menu-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresLoader_LoadSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM restaurants")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("1", "Grand Palace Hotel Restaurant"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dishes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "menu_type", "restaurant_id"}).
			AddRow("1", "Eggs Benedict Royale", "Poached eggs", "breakfast", "1").
			AddRow("2", "Truffle Risotto", "", "dinner", "1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dish_id", "rating", "review_text", "user_id", "created_at"}).
			AddRow("1", "1", 5, "divine", "user1", "2024-03-15"))

	repo, err := NewPostgresLoader(db).LoadSnapshot()
	require.NoError(t, err)

	assert.Equal(t, []domain.Restaurant{{ID: "1", Name: "Grand Palace Hotel Restaurant"}}, repo.ListRestaurants())
	dishes := repo.ListDishes("1")
	require.Len(t, dishes, 2)
	assert.Equal(t, domain.MenuBreakfast, dishes[0].MenuType)
	assert.Equal(t, domain.Review{ID: "1", DishID: "1", Rating: 5, ReviewText: "divine", UserID: "user1", Timestamp: "2024-03-15"},
		repo.ListDishReviews("1")[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_LoadSnapshotErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM restaurants")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "A"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dishes")).
		WillReturnError(errors.New("relation does not exist"))

	_, err = NewPostgresLoader(db).LoadSnapshot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dishes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_UnscannableRowAbortsLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM restaurants")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "A"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dishes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "menu_type", "restaurant_id"}).
			AddRow("1", "Soup", "", "lunch", "1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dish_id", "rating", "review_text", "user_id", "created_at"}).
			AddRow("1", "1", "five", "great", "user1", "2024-03-15"))

	repo, err := NewPostgresLoader(db).LoadSnapshot()
	require.Error(t, err)
	assert.Nil(t, repo)
	assert.Contains(t, err.Error(), "load reviews: scan review row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_RejectsDanglingRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM restaurants")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "A"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dishes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "menu_type", "restaurant_id"}).
			AddRow("1", "Soup", "", "lunch", "7"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dish_id", "rating", "review_text", "user_id", "created_at"}))

	_, err = NewPostgresLoader(db).LoadSnapshot()
	assert.ErrorIs(t, err, ErrDanglingDish)
}

func TestPostgresLoader_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS restaurants")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS dishes")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS reviews")).WillReturnError(errors.New("permission denied"))

	err = NewPostgresLoader(db).EnsureSchema()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
