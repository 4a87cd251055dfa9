// Package app wires the fixture generator together and runs it end to end.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontendshop/fixturegen/internal/catalog"
	"github.com/frontendshop/fixturegen/internal/config"
	"github.com/frontendshop/fixturegen/internal/domain"
	"github.com/frontendshop/fixturegen/internal/event"
	"github.com/frontendshop/fixturegen/internal/export"
	"github.com/frontendshop/fixturegen/internal/repository/postgres"
	"github.com/frontendshop/fixturegen/pkg/database"
	pkgkafka "github.com/frontendshop/fixturegen/pkg/kafka"
	"github.com/frontendshop/fixturegen/pkg/validator"
)

const connectTimeout = 10 * time.Second

// App holds the wired dependencies of the fixture generator.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	producer *pkgkafka.Producer
}

// NewApp builds the application from configuration. The database pool and
// Kafka producer are only created when the corresponding feature is enabled.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.DatabaseSeedEnabled {
		dbCfg := database.DefaultPostgresConfig()
		dbCfg.Host = cfg.PostgresHost
		dbCfg.Port = cfg.PostgresPort
		dbCfg.User = cfg.PostgresUser
		dbCfg.Password = cfg.PostgresPass
		dbCfg.DBName = cfg.PostgresDB
		dbCfg.SSLMode = cfg.PostgresSSL

		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		pool, err := database.NewPostgresPoolWithLogger(connectCtx, &dbCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to product database: %w", err)
		}
		a.pool = pool
	}

	if cfg.EventsEnabled {
		a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	}

	return a, nil
}

// Run generates the catalog, writes the CSV, and performs the optional
// database seeding and event publishing steps.
func (a *App) Run(ctx context.Context) error {
	generator := catalog.NewGenerator(a.cfg.Seed)
	products, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generate catalog: %w", err)
	}

	for i := range products {
		if err := validator.Validate(&products[i]); err != nil {
			return fmt.Errorf("validate product %s: %w", products[i].SerialNumber, err)
		}
	}
	a.logger.InfoContext(ctx, "catalog generated",
		slog.Int("products", len(products)),
		slog.Int64("seed", a.cfg.Seed),
	)

	if err := export.WriteCSV(a.cfg.OutputPath, products); err != nil {
		return fmt.Errorf("write catalog csv: %w", err)
	}
	a.logger.InfoContext(ctx, "catalog written",
		slog.String("path", a.cfg.OutputPath),
		slog.Int("rows", len(products)),
	)

	if a.pool != nil {
		if err := a.seedDatabase(ctx, products); err != nil {
			return err
		}
	}

	if a.producer != nil {
		a.publishEvents(ctx, products)
	}

	return nil
}

func (a *App) seedDatabase(ctx context.Context, products []domain.Product) error {
	repo := postgres.NewProductRepository(a.pool)

	removed, err := repo.DeleteFixtures(ctx)
	if err != nil {
		return fmt.Errorf("clear previous fixtures: %w", err)
	}
	a.logger.InfoContext(ctx, "previous fixtures cleared", slog.Int64("rows", removed))

	inserted, err := repo.BulkInsert(ctx, products)
	if err != nil {
		return fmt.Errorf("seed product database: %w", err)
	}
	a.logger.InfoContext(ctx, "product database seeded", slog.Int("rows", inserted))

	return nil
}

// publishEvents emits a product.seeded event per row. Publish failures are
// logged and skipped; the generated CSV is already on disk at this point.
func (a *App) publishEvents(ctx context.Context, products []domain.Product) {
	producer := event.NewProducer(a.producer, a.logger)

	published := 0
	for i := range products {
		if err := producer.PublishProductSeeded(ctx, &products[i]); err != nil {
			a.logger.WarnContext(ctx, "event publish failed",
				slog.String("serial_number", products[i].SerialNumber),
				slog.String("error", err.Error()),
			)
			continue
		}
		published++
	}
	a.logger.InfoContext(ctx, "seed events published",
		slog.Int("published", published),
		slog.Int("total", len(products)),
	)
}

// Shutdown releases the Kafka producer and database pool.
func (a *App) Shutdown() {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Warn("close kafka producer", slog.String("error", err.Error()))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
