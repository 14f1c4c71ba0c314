package service

import (
	"context"

	"best-menu/ai-svc/internal/domain"
	"best-menu/ai-svc/internal/storage"
)

type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]domain.Dish, bool, error)
	Set(ctx context.Context, key string, dishes []domain.Dish) error
}

type AIRecommendationProvider interface {
	Generate(ctx context.Context, restaurantName, menuType string) ([]domain.Dish, error)
}

var (
	_ AIRecommendationProvider = (*AIRecommendationService)(nil)
	_ ChatCompleter            = (*storage.OpenAIClient)(nil)
	_ RecommendationCache      = (*storage.RedisCache)(nil)
)
