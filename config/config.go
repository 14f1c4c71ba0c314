package config

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func MustInitPostgres(s Settings, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured; callers treat a nil
// writer as "publishing disabled". Events are single messages, so the writer
// flushes right away and gives up quickly when the broker is down.
func NewKafkaWriter(s Settings, topic string) *kafka.Writer {
	if s.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(s.KafkaBroker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 2 * time.Second,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaReader(s Settings, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   topic,
		GroupID: groupID,
	})
}
