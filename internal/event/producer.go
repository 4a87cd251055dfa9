// Package event publishes fixture lifecycle events for downstream consumers.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frontendshop/fixturegen/internal/domain"
	pkgkafka "github.com/frontendshop/fixturegen/pkg/kafka"
)

const (
	// TopicProductSeeded carries one event per fixture product written.
	TopicProductSeeded = "fixtures.product.seeded"

	// AggregateTypeProduct is the aggregate type for product events.
	AggregateTypeProduct = "product"

	// SourceFixtureGenerator identifies this tool as the event source.
	SourceFixtureGenerator = "fixture-generator"
)

// EventTypeProductSeeded is the event type for seeded fixture products.
const EventTypeProductSeeded = "product.seeded"

// publisher abstracts the Kafka producer for testing.
type publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// ProductSeededData is the payload for product.seeded events.
type ProductSeededData struct {
	SerialNumber    string    `json:"serial_number"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	InventoryStatus string    `json:"inventory_status"`
	Featured        bool      `json:"featured"`
	Stock           int       `json:"stock"`
	CreatedAt       time.Time `json:"created_at"`
}

// Producer publishes fixture product events to Kafka.
type Producer struct {
	kafka  publisher
	logger *slog.Logger
}

// NewProducer creates a new fixture event producer.
func NewProducer(kafka publisher, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductSeeded emits a product.seeded event for a generated fixture.
func (p *Producer) PublishProductSeeded(ctx context.Context, product *domain.Product) error {
	data := ProductSeededData{
		SerialNumber:    product.SerialNumber,
		Name:            product.Name,
		Slug:            product.Slug,
		Price:           product.Price,
		Currency:        product.Currency,
		InventoryStatus: product.InventoryStatus,
		Featured:        product.Featured,
		Stock:           product.Stock,
		CreatedAt:       product.CreatedAt,
	}

	evt, err := pkgkafka.NewEvent(EventTypeProductSeeded, product.SerialNumber, AggregateTypeProduct, SourceFixtureGenerator, data)
	if err != nil {
		return fmt.Errorf("build product.seeded event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductSeeded, evt); err != nil {
		return fmt.Errorf("publish product.seeded for %s: %w", product.SerialNumber, err)
	}

	p.logger.DebugContext(ctx, "product.seeded event published",
		slog.String("serial_number", product.SerialNumber),
		slog.String("slug", product.Slug),
	)

	return nil
}
