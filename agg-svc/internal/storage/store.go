package storage

import (
	"context"
	"strings"
	"time"

	"best-menu/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	KeyAllTime    = "searches:alltime"
	KeyMenuTypes  = "searches:menu-types"
	KeyUnmatched  = "searches:unmatched"
	dailyKeyTTL   = 7 * 24 * time.Hour
	dailyKeyStamp = "2006-01-02"
)

func DailyKey(day time.Time) string {
	return "searches:daily:" + day.UTC().Format(dailyKeyStamp)
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// RecordSearch bumps the popularity counters for one search in a single round trip.
func (s *Store) RecordSearch(ctx context.Context, event domain.SearchEvent) error {
	query := strings.ToLower(strings.TrimSpace(event.RestaurantQuery))
	menuType := strings.ToLower(strings.TrimSpace(event.MenuType))

	at := event.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	dailyKey := DailyKey(at)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, 1, query)
		pipe.Expire(ctx, dailyKey, dailyKeyTTL)
		pipe.ZIncrBy(ctx, KeyAllTime, 1, query)
		if menuType != "" {
			pipe.ZIncrBy(ctx, KeyMenuTypes, 1, menuType)
		}
		if event.ResultCount == 0 {
			pipe.ZIncrBy(ctx, KeyUnmatched, 1, query)
		}
		return nil
	})
	return err
}
