package main

import (
	httpapi "best-menu/analytics-svc/internal/api/http"
	"best-menu/analytics-svc/internal/service"
	"best-menu/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger(settings.LogLevel, settings.LogFormat)
	defer logger.Sync()

	rdb := config.MustInitRedis(settings, logger)
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewAnalyticsService(rdb), logger)
	httpapi.StartServer(":"+settings.AnalyticsSvcPort, httpapi.NewRouter(handler), logger)
}
