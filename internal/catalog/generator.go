// Package catalog synthesizes the deterministic fixture catalog: one product
// row per reference name, with randomized attributes drawn from a seeded PRNG
// so every run with the same seed yields the same dataset.
package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/frontendshop/fixturegen/internal/domain"
	apperrors "github.com/frontendshop/fixturegen/pkg/errors"
	"github.com/frontendshop/fixturegen/pkg/slug"
)

// DefaultSeed is the PRNG seed used when none is configured, fixed so every
// environment generates the same fixture catalog.
const DefaultSeed int64 = 42

// cdnBaseURL is the asset host fixture image URLs point at.
const cdnBaseURL = "https://cdn.frontendshop.dev/products"

// baseDate anchors the createdAt series; row idx is offset by idx days.
var baseDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator synthesizes catalog fixture rows from the embedded reference lists.
type Generator struct {
	rng      *rand.Rand
	names    []string
	badges   []string
	tags     []string
	statuses []string
}

// NewGenerator creates a generator over the embedded reference lists using
// the given PRNG seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- deterministic fixture data, not security-sensitive
		names:    ProductNames,
		badges:   Badges,
		tags:     Tags,
		statuses: domain.InventoryStatuses(),
	}
}

// Generate builds one product row per reference name, in list order. Rows are
// appended once and never mutated afterwards. The random draws per row happen
// in a fixed order (price, originalPrice, badges, tags, rating, reviewCount,
// stock) so a given seed always yields the same catalog.
func (g *Generator) Generate() ([]domain.Product, error) {
	if err := g.validateReferences(); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(g.names))
	for i, name := range g.names {
		idx := i + 1 // row indices are 1-based

		s := slug.Generate(name)

		price := round2(g.uniform(19, 199))
		originalPrice := ""
		if idx%3 != 0 {
			originalPrice = formatAmount(round2(price * g.uniform(1.05, 1.35)))
		}
		badges := g.sample(g.badges, g.intBetween(0, 2))
		tags := g.sample(g.tags, g.intBetween(2, 4))
		rating := round2(g.uniform(3.6, 4.9))
		reviewCount := g.intBetween(12, 420)
		stock := g.intBetween(0, 250)

		createdAt := baseDate.AddDate(0, 0, idx)

		products = append(products, domain.Product{
			Name:            name,
			Slug:            s,
			Summary:         fmt.Sprintf("%s to accelerate modern product teams.", name),
			Description:     fmt.Sprintf("%s provides reusable components, patterns, and assets tailored for fast-moving SaaS teams.", name),
			Price:           price,
			OriginalPrice:   originalPrice,
			Currency:        "USD",
			ImageURL:        fmt.Sprintf("%s/%s.jpg", cdnBaseURL, s),
			ThumbnailURL:    fmt.Sprintf("%s/%s-thumb.jpg", cdnBaseURL, s),
			Badges:          badges,
			Tags:            tags,
			Rating:          rating,
			ReviewCount:     reviewCount,
			InventoryStatus: g.statuses[idx%len(g.statuses)],
			Featured:        idx%4 == 0,
			SerialNumber:    fmt.Sprintf("FS-%04d-%03d", 2025+idx, idx),
			Stock:           stock,
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt.Add(6 * time.Hour),
		})
	}

	return products, nil
}

// validateReferences rejects reference lists too small for the sampling
// ranges. The shipped constants never trip these checks.
func (g *Generator) validateReferences() error {
	if len(g.names) == 0 {
		return apperrors.InvalidInput("product name list is empty")
	}
	if len(g.badges) < 2 {
		return apperrors.InvalidInput("badge list needs at least 2 entries to sample from")
	}
	if len(g.tags) < 4 {
		return apperrors.InvalidInput("tag list needs at least 4 entries to sample from")
	}
	if len(g.statuses) == 0 {
		return apperrors.InvalidInput("inventory status list is empty")
	}
	return nil
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween draws from {lo, ..., hi} inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// sample picks k distinct values without replacement, preserving the random
// selection order.
func (g *Generator) sample(values []string, k int) []string {
	picked := make([]string, 0, k)
	for _, i := range g.rng.Perm(len(values))[:k] {
		picked = append(picked, values[i])
	}
	return picked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
