package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]any{"id": 1, "title": "Widget"}
	ev, err := NewEvent("webshop.item.created", "1", "item", "catalog-service", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "webshop.item.created", ev.EventType)
	assert.Equal(t, "1", ev.AggregateID)
	assert.Equal(t, "item", ev.AggregateType)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, "catalog-service", ev.Source)
	assert.WithinDuration(t, time.Now().UTC(), ev.Timestamp, time.Minute)

	var decoded struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, ev.UnmarshalData(&decoded))
	assert.Equal(t, 1, decoded.ID)
	assert.Equal(t, "Widget", decoded.Title)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a, err := NewEvent("webshop.item.created", "1", "item", "catalog-service", nil)
	require.NoError(t, err)
	b, err := NewEvent("webshop.item.created", "1", "item", "catalog-service", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestUnmarshalEvent_Invalid(t *testing.T) {
	_, err := UnmarshalEvent([]byte(`{not json`))
	assert.Error(t, err)
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "webshop.item.created", Topic("item", "created"))
	assert.Equal(t, "webshop.item.deleted", Topic("item", "deleted"))
}

func TestPingBrokers_NoBrokers(t *testing.T) {
	err := PingBrokers(context.Background(), nil)
	assert.Error(t, err)
}
