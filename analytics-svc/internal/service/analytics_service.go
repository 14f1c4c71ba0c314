package service

import (
	"context"
	"errors"
	"time"

	"best-menu/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"

	DefaultLimit = 10
	MaxLimit     = 100

	keyAllTime   = "searches:alltime"
	keyMenuTypes = "searches:menu-types"
	keyUnmatched = "searches:unmatched"
)

var ErrInvalidPeriod = errors.New("period must be 'today' or 'all'")

type AnalyticsService struct {
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		rdb: rdb,
		now: time.Now,
	}
}

// WithClock is used by tests to pin "today".
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func dailyKey(day time.Time) string {
	return "searches:daily:" + day.UTC().Format("2006-01-02")
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func (s *AnalyticsService) TopSearches(ctx context.Context, period string, limit int) ([]domain.SearchStat, error) {
	var key string
	switch period {
	case PeriodToday:
		key = dailyKey(s.now())
	case PeriodAll, "":
		key = keyAllTime
	default:
		return nil, ErrInvalidPeriod
	}
	return s.topN(ctx, key, clampLimit(limit))
}

func (s *AnalyticsService) MenuTypeCounts(ctx context.Context) ([]domain.SearchStat, error) {
	return s.topN(ctx, keyMenuTypes, MaxLimit)
}

func (s *AnalyticsService) UnmatchedSearches(ctx context.Context, limit int) ([]domain.SearchStat, error) {
	return s.topN(ctx, keyUnmatched, clampLimit(limit))
}

func (s *AnalyticsService) Summary(ctx context.Context) domain.SummaryResponse {
	return domain.SummaryResponse{
		MostSearchedToday:    s.first(ctx, dailyKey(s.now())),
		MostSearchedAllTime:  s.first(ctx, keyAllTime),
		MostSearchedMenuType: s.first(ctx, keyMenuTypes),
		MostUnmatched:        s.first(ctx, keyUnmatched),
	}
}

func (s *AnalyticsService) first(ctx context.Context, key string) *domain.SearchStat {
	stats, err := s.topN(ctx, key, 1)
	if err != nil || len(stats) == 0 {
		return nil
	}
	return &stats[0]
}

// topN returns members by descending score; equal scores come back in
// reverse lexicographic order, which is how ZREVRANGE breaks ties.
func (s *AnalyticsService) topN(ctx context.Context, key string, n int) ([]domain.SearchStat, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	stats := make([]domain.SearchStat, 0, len(result))
	for _, z := range result {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		stats = append(stats, domain.SearchStat{Query: member, Searches: int64(z.Score)})
	}
	return stats, nil
}
