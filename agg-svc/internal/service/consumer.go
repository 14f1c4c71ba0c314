package service

import (
	"context"
	"encoding/json"
	"strings"

	"best-menu/agg-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting search aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("Consumer stopped")
				return
			}
			c.Logger.Warn("Error reading message", zap.Error(err))
			continue
		}

		var event domain.SearchEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("Error unmarshaling message", zap.ByteString("value", message.Value), zap.Error(err))
			continue
		}

		c.ProcessSearch(ctx, event)
	}
}

func (c *Consumer) ProcessSearch(ctx context.Context, event domain.SearchEvent) {
	if event.Type != domain.EventSearchPerformed {
		return
	}
	if strings.TrimSpace(event.RestaurantQuery) == "" {
		return
	}

	if err := c.Store.RecordSearch(ctx, event); err != nil {
		c.Logger.Error("Error recording search",
			zap.String("restaurant_query", event.RestaurantQuery),
			zap.Error(err))
		return
	}

	c.Logger.Debug("Recorded search",
		zap.String("restaurant_query", event.RestaurantQuery),
		zap.String("menu_type", event.MenuType),
		zap.Int("result_count", event.ResultCount))
}
