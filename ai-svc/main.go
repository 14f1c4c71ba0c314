package main

import (
	"net/http"

	httpapi "best-menu/ai-svc/internal/api/http"
	"best-menu/ai-svc/internal/service"
	"best-menu/ai-svc/internal/storage"
	"best-menu/config"

	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger(settings.LogLevel, settings.LogFormat)
	defer logger.Sync()

	if settings.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, AI recommendations will fail")
	}

	redisClient := config.MustInitRedis(settings, logger)
	defer redisClient.Close()

	chat := storage.NewOpenAIClient(settings.OpenAIAPIKey, settings.OpenAIAPIURL, settings.OpenAIModel,
		&http.Client{Timeout: settings.AITimeout})
	cache := storage.NewRedisCache(redisClient, settings.AICacheTTL)
	provider := service.NewAIRecommendationService(chat, cache, logger)
	logger.Info("AI provider configured",
		zap.String("model", settings.OpenAIModel),
		zap.Duration("timeout", settings.AITimeout),
		zap.Duration("cache_ttl", settings.AICacheTTL))

	handler := httpapi.NewHandler(provider, logger)
	httpapi.StartServer(":"+settings.AISvcPort, httpapi.NewRouter(handler), logger)
}
