package main

import (
	"net/http"

	"best-menu/api-gateway/internal/gateway"
	"best-menu/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger(settings.LogLevel, settings.LogFormat)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:      settings.MenuSvcURL,
		AISvcURL:        settings.AISvcURL,
		AnalyticsSvcURL: settings.AnalyticsSvcURL,
		FrontendDir:     settings.FrontendDir,
	}, &http.Client{Timeout: settings.AITimeout}, logger)

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	addr := ":" + settings.GatewayPort
	logger.Info("API Gateway starting", zap.String("addr", addr),
		zap.String("menu_svc", settings.MenuSvcURL),
		zap.String("ai_svc", settings.AISvcURL))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(addr, handler)))
}
