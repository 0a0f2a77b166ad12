package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/kafka"
	"github.com/webshop/catalog-search/internal/service"
)

// Kafka topics for catalog item domain events consumed by this service.
const (
	TopicItemCreated = "webshop.item.created"
	TopicItemUpdated = "webshop.item.updated"
	TopicItemDeleted = "webshop.item.deleted"
)

// Topics returns all topics this consumer subscribes to.
func Topics() []string {
	return []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}
}

// ItemEventData is the payload of item created/updated events.
type ItemEventData struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ArtNum      string  `json:"artNum"`
	Features    string  `json:"features"`
	CategoryID  int     `json:"category_id"`
}

// ItemDeletedData is the payload of an item.deleted event.
type ItemDeletedData struct {
	ID int `json:"id"`
}

// Consumer routes catalog item events into the indexing service. An event
// carries the full item state, so handling is idempotent: replays overwrite
// the document with the same content.
type Consumer struct {
	svc    *service.CatalogSearchService
	logger *slog.Logger
}

// NewConsumer creates a new event consumer.
func NewConsumer(svc *service.CatalogSearchService, logger *slog.Logger) *Consumer {
	return &Consumer{
		svc:    svc,
		logger: logger,
	}
}

// Handle processes a Kafka event based on its type.
func (c *Consumer) Handle(ctx context.Context, event *kafka.Event) error {
	switch event.EventType {
	case TopicItemCreated, TopicItemUpdated:
		return c.handleItemUpsert(ctx, event)
	case TopicItemDeleted:
		return c.handleItemDeleted(ctx, event)
	default:
		c.logger.WarnContext(ctx, "unknown event type received",
			slog.String("event_type", event.EventType),
			slog.String("event_id", event.EventID),
		)
		return nil
	}
}

func (c *Consumer) handleItemUpsert(ctx context.Context, event *kafka.Event) error {
	var data ItemEventData
	if err := event.UnmarshalData(&data); err != nil {
		return fmt.Errorf("unmarshal %s data: %w", event.EventType, err)
	}

	item := &domain.CatalogItem{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Description: data.Description,
		Image:       data.Image,
		ArtNum:      data.ArtNum,
		Features:    data.Features,
		CategoryID:  data.CategoryID,
	}

	if err := c.svc.IndexItem(ctx, item); err != nil {
		return fmt.Errorf("handle %s: %w", event.EventType, err)
	}
	return nil
}

func (c *Consumer) handleItemDeleted(ctx context.Context, event *kafka.Event) error {
	var data ItemDeletedData
	if err := event.UnmarshalData(&data); err != nil {
		return fmt.Errorf("unmarshal item.deleted data: %w", err)
	}

	if err := c.svc.RemoveItem(ctx, data.ID); err != nil {
		return fmt.Errorf("handle item.deleted: %w", err)
	}
	return nil
}
