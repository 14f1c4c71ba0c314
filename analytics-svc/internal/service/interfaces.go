package service

import (
	"context"

	"best-menu/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopSearches(ctx context.Context, period string, limit int) ([]domain.SearchStat, error)
	MenuTypeCounts(ctx context.Context) ([]domain.SearchStat, error)
	UnmatchedSearches(ctx context.Context, limit int) ([]domain.SearchStat, error)
	Summary(ctx context.Context) domain.SummaryResponse
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
