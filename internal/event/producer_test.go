package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendshop/fixturegen/internal/domain"
	pkgkafka "github.com/frontendshop/fixturegen/pkg/kafka"
)

type fakePublisher struct {
	topic string
	event *pkgkafka.Event
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, event *pkgkafka.Event) error {
	f.topic = topic
	f.event = event
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func seededProduct() *domain.Product {
	return &domain.Product{
		Name:            "Aurora Dashboard Kit",
		Slug:            "aurora-dashboard-kit",
		Price:           129.9,
		Currency:        "USD",
		InventoryStatus: domain.InventoryStatusLowStock,
		Featured:        true,
		SerialNumber:    "FS-2026-001",
		Stock:           42,
		CreatedAt:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestPublishProductSeeded(t *testing.T) {
	fake := &fakePublisher{}
	producer := NewProducer(fake, discardLogger())

	err := producer.PublishProductSeeded(context.Background(), seededProduct())
	require.NoError(t, err)

	assert.Equal(t, TopicProductSeeded, fake.topic)
	require.NotNil(t, fake.event)
	assert.Equal(t, EventTypeProductSeeded, fake.event.EventType)
	assert.Equal(t, "FS-2026-001", fake.event.AggregateID)
	assert.Equal(t, AggregateTypeProduct, fake.event.AggregateType)
	assert.Equal(t, SourceFixtureGenerator, fake.event.Source)
	assert.NotEmpty(t, fake.event.EventID)

	var data ProductSeededData
	require.NoError(t, fake.event.UnmarshalData(&data))
	assert.Equal(t, "FS-2026-001", data.SerialNumber)
	assert.Equal(t, "aurora-dashboard-kit", data.Slug)
	assert.Equal(t, 129.9, data.Price)
	assert.Equal(t, domain.InventoryStatusLowStock, data.InventoryStatus)
	assert.True(t, data.Featured)
	assert.Equal(t, 42, data.Stock)
}

func TestPublishProductSeeded_PublishError(t *testing.T) {
	fake := &fakePublisher{err: errors.New("broker unavailable")}
	producer := NewProducer(fake, discardLogger())

	err := producer.PublishProductSeeded(context.Background(), seededProduct())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish product.seeded for FS-2026-001")
}
