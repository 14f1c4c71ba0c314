package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"best-menu/menu-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishSearch(t *testing.T) {
	writer := &recordingWriter{}
	event := domain.SearchEvent{
		Type:            "search_performed",
		RestaurantQuery: "Grand Palace",
		MenuType:        "breakfast",
		ResultCount:     3,
		Source:          domain.SourceEngine,
		Timestamp:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, NewKafkaPublisher(writer).PublishSearch(context.Background(), event))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "grand palace", string(writer.messages[0].Key))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, "search_performed", decoded["type"])
	assert.Equal(t, "breakfast", decoded["menu_type"])
	assert.EqualValues(t, 3, decoded["result_count"])
	assert.NotContains(t, decoded, "city")
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker unavailable")}
	err := NewKafkaPublisher(writer).PublishSearch(context.Background(), domain.SearchEvent{})
	assert.EqualError(t, err, "broker unavailable")
}
