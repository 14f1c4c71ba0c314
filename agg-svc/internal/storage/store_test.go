package storage

import (
	"context"
	"testing"
	"time"

	"best-menu/agg-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func TestStore_RecordSearch(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.RecordSearch(ctx, domain.SearchEvent{
		Type: domain.EventSearchPerformed, RestaurantQuery: "Grand Palace", MenuType: "Breakfast", ResultCount: 3, Timestamp: day,
	}))
	require.NoError(t, store.RecordSearch(ctx, domain.SearchEvent{
		Type: domain.EventSearchPerformed, RestaurantQuery: " grand palace ", MenuType: "dinner", ResultCount: 2, Timestamp: day,
	}))
	require.NoError(t, store.RecordSearch(ctx, domain.SearchEvent{
		Type: domain.EventSearchPerformed, RestaurantQuery: "Nowhere Diner", MenuType: "lunch", ResultCount: 0, Timestamp: day,
	}))

	score, err := mr.ZScore(KeyAllTime, "grand palace")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)

	score, err = mr.ZScore("searches:daily:2024-03-15", "grand palace")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	assert.Equal(t, 7*24*time.Hour, mr.TTL("searches:daily:2024-03-15"))

	score, err = mr.ZScore(KeyMenuTypes, "breakfast")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	members, err := mr.ZMembers(KeyUnmatched)
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere diner"}, members)
}

func TestDailyKey(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "searches:daily:2024-03-14", DailyKey(time.Date(2024, 3, 15, 2, 0, 0, 0, loc)))
}
