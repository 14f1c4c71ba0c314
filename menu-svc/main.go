package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"best-menu/config"
	httpapi "best-menu/menu-svc/internal/api/http"
	"best-menu/menu-svc/internal/service"
	"best-menu/menu-svc/internal/storage"

	"go.uber.org/zap"
)

func loadRepository(settings config.Settings, logger *zap.Logger) *storage.MemoryRepository {
	if settings.DataSource != "postgres" {
		repo, err := storage.NewFixtureRepository()
		if err != nil {
			logger.Fatal("Invalid fixture dataset", zap.Error(err))
		}
		return repo
	}

	db := config.MustInitPostgres(settings, logger)
	defer db.Close()

	loader := storage.NewPostgresLoader(db)
	if err := loader.EnsureSchema(); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}
	repo, err := loader.LoadSnapshot()
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	return repo
}

func main() {
	settings, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger(settings.LogLevel, settings.LogFormat)
	defer logger.Sync()

	repo := loadRepository(settings, logger)
	restaurants, dishes, reviews := repo.Counts()
	logger.Info("Dataset loaded",
		zap.String("source", settings.DataSource),
		zap.Int("restaurants", restaurants),
		zap.Int("dishes", dishes),
		zap.Int("reviews", reviews))

	var publisher service.SearchEventPublisher
	if writer := config.NewKafkaWriter(settings, settings.SearchTopic); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Warn("KAFKA_BROKER not set, search events disabled")
	}

	var places service.PlaceResolver
	if settings.PlacesURL != "" {
		places = storage.NewNominatimResolver(settings.PlacesURL, &http.Client{Timeout: 10 * time.Second})
	}

	engine := service.NewRecommendationEngine(repo, repo, repo)
	suggestions := service.NewSuggestionLookup(repo)
	search := service.NewSearchService(engine, suggestions, places, publisher, logger)
	qr := service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := httpapi.NewHandler(search, qr, logger)
	httpapi.StartServer(ctx, ":"+settings.MenuSvcPort, httpapi.NewRouter(handler), logger)
	search.Wait()
}
