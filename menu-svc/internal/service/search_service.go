package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"best-menu/menu-svc/internal/domain"
	"best-menu/menu-svc/internal/metrics"

	"go.uber.org/zap"
)

var (
	ErrInvalidSearch  = errors.New("restaurant name and menu type are required")
	ErrPlacesDisabled = errors.New("place resolution is not configured")
)

// DefaultPublishTimeout bounds a single search event publish.
const DefaultPublishTimeout = 3 * time.Second

type SearchService struct {
	engine         RecommendationEngineInterface
	suggestions    SuggestionLookupInterface
	places         PlaceResolver
	publisher      SearchEventPublisher
	publishTimeout time.Duration
	pending        sync.WaitGroup
	logger         *zap.Logger
}

// NewSearchService accepts nil places and publisher; the matching features are then skipped.
func NewSearchService(engine RecommendationEngineInterface, suggestions SuggestionLookupInterface, places PlaceResolver, publisher SearchEventPublisher, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		engine:         engine,
		suggestions:    suggestions,
		places:         places,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
		logger:         logger,
	}
}

func (s *SearchService) WithPublishTimeout(d time.Duration) *SearchService {
	s.publishTimeout = d
	return s
}

// Wait blocks until every search event handed to the publisher has been sent or dropped.
func (s *SearchService) Wait() {
	s.pending.Wait()
}

func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	restaurantName := strings.TrimSpace(req.RestaurantQuery)
	menuType := strings.TrimSpace(req.MenuType)
	if restaurantName == "" || menuType == "" {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return domain.SearchResult{}, ErrInvalidSearch
	}
	if known, ok := domain.ParseMenuType(menuType); ok {
		menuType = string(known)
	}

	query := restaurantName
	if city := strings.TrimSpace(req.City); city != "" && s.places != nil {
		query = s.refineQuery(ctx, restaurantName, city)
	}

	dishes := s.engine.Recommend(query, menuType)
	if len(dishes) == 0 {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeResults).Inc()
	}

	s.publish(ctx, domain.SearchEvent{
		Type:            "search_performed",
		RestaurantQuery: query,
		MenuType:        menuType,
		City:            strings.TrimSpace(req.City),
		ResultCount:     len(dishes),
		Source:          domain.SourceEngine,
		Timestamp:       time.Now(),
	})

	s.logger.Debug("search completed",
		zap.String("query", query),
		zap.String("menu_type", menuType),
		zap.Int("results", len(dishes)))

	return domain.SearchResult{
		State:          domain.StateCompleted,
		RestaurantName: restaurantName,
		MenuType:       menuType,
		Source:         domain.SourceEngine,
		Dishes:         dishes,
	}, nil
}

// publish sends the event in the background so a slow broker never holds the
// search response. The request's values are kept but not its cancellation.
func (s *SearchService) publish(ctx context.Context, event domain.SearchEvent) {
	if s.publisher == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
		defer cancel()

		if err := s.publisher.PublishSearch(pubCtx, event); err != nil {
			s.logger.Warn("failed to publish search event",
				zap.String("query", event.RestaurantQuery),
				zap.Error(err))
		}
	}()
}

// refineQuery swaps the typed name for the resolved place name. Any lookup
// problem, or a place name that matches no restaurant, falls back to the typed name.
func (s *SearchService) refineQuery(ctx context.Context, query, city string) string {
	places, err := s.places.Resolve(ctx, query, city)
	if err != nil {
		metrics.PlaceLookupsFailed.Inc()
		s.logger.Warn("place resolution failed",
			zap.String("query", query),
			zap.String("city", city),
			zap.Error(err))
		return query
	}
	if len(places) == 0 {
		metrics.PlaceLookupsFailed.Inc()
		return query
	}

	name := places[0].DisplayName
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return query
	}
	if len(s.suggestions.Suggest(name)) == 0 {
		s.logger.Debug("resolved place matches no restaurant, keeping typed name",
			zap.String("query", query),
			zap.String("place", name))
		return query
	}
	return name
}

func (s *SearchService) Suggest(query string) []string {
	return s.suggestions.Suggest(query)
}

func (s *SearchService) ResolvePlaces(ctx context.Context, query, locality string) ([]domain.Place, error) {
	if s.places == nil {
		return nil, ErrPlacesDisabled
	}
	return s.places.Resolve(ctx, query, locality)
}
