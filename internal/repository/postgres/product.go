// Package postgres seeds generated fixture rows into the product database.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/frontendshop/fixturegen/internal/domain"
	"github.com/frontendshop/fixturegen/pkg/database"
)

// batchSize caps the number of rows per INSERT statement.
const batchSize = 500

// serialPrefix identifies rows seeded by this tool; cleanup keys off it.
const serialPrefix = "FS-"

// insertColumns is the number of bound parameters per row.
const insertColumns = 20

// fixtureNamespace is the namespace for deterministic fixture product IDs, so
// re-runs target the same rows instead of accumulating duplicates.
var fixtureNamespace = uuid.MustParse("5f1c6f0a-8c1d-4b43-9a5e-73d2f0e4c9b1")

// FixtureID derives a stable UUID from a fixture serial number.
func FixtureID(serialNumber string) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(serialNumber)).String()
}

// ProductRepository writes fixture products using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed fixture product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// DeleteFixtures removes previously seeded fixture rows so re-runs are
// idempotent. Returns the number of rows removed.
func (r *ProductRepository) DeleteFixtures(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM products WHERE serial_number LIKE $1`,
		serialPrefix+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("delete fixture products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkInsert writes products in batched multi-row INSERTs and returns the
// number of rows inserted. Conflicting serial numbers are skipped.
func (r *ProductRepository) BulkInsert(ctx context.Context, products []domain.Product) (int, error) {
	inserted := 0
	for start := 0; start < len(products); start += batchSize {
		end := min(start+batchSize, len(products))
		n, err := r.insertBatch(ctx, products[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (r *ProductRepository) insertBatch(ctx context.Context, batch []domain.Product) (int, error) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO products (
		id, name, slug, summary, description, price_cents, original_price_cents,
		currency, image_url, thumbnail_url, badges, tags, rating, review_count,
		inventory_status, featured, serial_number, stock, created_at, updated_at
	) VALUES `)

	args := make([]any, 0, len(batch)*insertColumns)
	for i := range batch {
		p := &batch[i]
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * insertColumns
		sb.WriteByte('(')
		for j := 1; j <= insertColumns; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteByte(')')

		badgesJSON, err := jsonColumn(p.Badges)
		if err != nil {
			return 0, fmt.Errorf("marshal badges for %s: %w", p.SerialNumber, err)
		}
		tagsJSON, err := jsonColumn(p.Tags)
		if err != nil {
			return 0, fmt.Errorf("marshal tags for %s: %w", p.SerialNumber, err)
		}

		// NULL original price when the row has none; the CSV keeps the
		// empty-cell convention, the database gets a proper NULL.
		var originalCents any
		if cents, ok := p.OriginalPriceCents(); ok {
			originalCents = cents
		}

		args = append(args,
			FixtureID(p.SerialNumber), p.Name, p.Slug, p.Summary, p.Description,
			p.PriceCents(), originalCents, p.Currency, p.ImageURL, p.ThumbnailURL,
			badgesJSON, tagsJSON, p.Rating, p.ReviewCount, p.InventoryStatus,
			p.Featured, p.SerialNumber, p.Stock, p.CreatedAt, p.UpdatedAt,
		)
	}
	sb.WriteString(" ON CONFLICT (serial_number) DO NOTHING")

	tag, err := r.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("insert fixture products: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// jsonColumn encodes values for a jsonb column, emitting [] rather than null
// for an empty slice.
func jsonColumn(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}
