package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"best-menu/ai-svc/internal/domain"
	"best-menu/ai-svc/internal/metrics"

	"go.uber.org/zap"
)

var (
	ErrInvalidRequest    = errors.New("restaurantName and menuType are required")
	ErrInvalidAIResponse = errors.New("invalid JSON response from AI")
)

type AIRecommendationService struct {
	chat   ChatCompleter
	cache  RecommendationCache
	logger *zap.Logger
}

// NewAIRecommendationService accepts a nil cache, in which case every call goes upstream.
func NewAIRecommendationService(chat ChatCompleter, cache RecommendationCache, logger *zap.Logger) *AIRecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIRecommendationService{
		chat:   chat,
		cache:  cache,
		logger: logger,
	}
}

func CacheKey(restaurantName, menuType string) string {
	return fmt.Sprintf("ai:recommendations:%s:%s",
		strings.ToLower(strings.TrimSpace(restaurantName)),
		strings.ToLower(strings.TrimSpace(menuType)))
}

func (s *AIRecommendationService) Generate(ctx context.Context, restaurantName, menuType string) ([]domain.Dish, error) {
	restaurantName = strings.TrimSpace(restaurantName)
	menuType = strings.TrimSpace(menuType)
	if restaurantName == "" || menuType == "" {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, ErrInvalidRequest
	}

	key := CacheKey(restaurantName, menuType)
	if s.cache != nil {
		dishes, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeCached).Inc()
			return dishes, nil
		}
	}

	content, err := s.chat.Complete(ctx, systemPrompt, BuildPrompt(restaurantName, menuType))
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	dishes, err := ParseDishes(content)
	if err != nil {
		s.logger.Error("Failed to parse AI response", zap.String("content", content), zap.Error(err))
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeGenerated).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, dishes); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return dishes, nil
}
