package catalog

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendshop/fixturegen/internal/domain"
	apperrors "github.com/frontendshop/fixturegen/pkg/errors"
)

func generate(t *testing.T) []domain.Product {
	t.Helper()
	products, err := NewGenerator(DefaultSeed).Generate()
	require.NoError(t, err)
	return products
}

func TestGenerate_RowCountMatchesNameList(t *testing.T) {
	products := generate(t)

	assert.Len(t, products, len(ProductNames))
	assert.Len(t, products, 50)
	for i, p := range products {
		assert.Equal(t, ProductNames[i], p.Name, "row order must match name list order")
	}
}

func TestGenerate_DeterministicAcrossRuns(t *testing.T) {
	first := generate(t)
	second := generate(t)

	assert.Equal(t, first, second)
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	base, err := NewGenerator(DefaultSeed).Generate()
	require.NoError(t, err)
	other, err := NewGenerator(7).Generate()
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}

func TestGenerate_SlugsHaveNoSpacesOrAmpersands(t *testing.T) {
	for _, p := range generate(t) {
		assert.NotContains(t, p.Slug, " ", "slug for %q", p.Name)
		assert.NotContains(t, p.Slug, "&", "slug for %q", p.Name)
	}
}

func TestGenerate_OriginalPriceRule(t *testing.T) {
	for i, p := range generate(t) {
		idx := i + 1
		if idx%3 == 0 {
			assert.Empty(t, p.OriginalPrice, "row %d", idx)
			continue
		}
		require.NotEmpty(t, p.OriginalPrice, "row %d", idx)
		original, err := strconv.ParseFloat(p.OriginalPrice, 64)
		require.NoError(t, err, "row %d", idx)
		assert.GreaterOrEqual(t, original, p.Price, "row %d", idx)
	}
}

func TestGenerate_BadgesWithinReferenceSet(t *testing.T) {
	known := make(map[string]bool, len(Badges))
	for _, b := range Badges {
		known[b] = true
	}

	for i, p := range generate(t) {
		require.NotNil(t, p.Badges, "row %d", i+1)
		assert.LessOrEqual(t, len(p.Badges), 2, "row %d", i+1)

		seen := make(map[string]bool, len(p.Badges))
		for _, b := range p.Badges {
			assert.True(t, known[b], "row %d: unknown badge %q", i+1, b)
			assert.False(t, seen[b], "row %d: duplicate badge %q", i+1, b)
			seen[b] = true
		}
	}
}

func TestGenerate_TagsWithinReferenceSet(t *testing.T) {
	known := make(map[string]bool, len(Tags))
	for _, tag := range Tags {
		known[tag] = true
	}

	for i, p := range generate(t) {
		assert.GreaterOrEqual(t, len(p.Tags), 2, "row %d", i+1)
		assert.LessOrEqual(t, len(p.Tags), 4, "row %d", i+1)

		seen := make(map[string]bool, len(p.Tags))
		for _, tag := range p.Tags {
			assert.True(t, known[tag], "row %d: unknown tag %q", i+1, tag)
			assert.False(t, seen[tag], "row %d: duplicate tag %q", i+1, tag)
			seen[tag] = true
		}
	}
}

func TestGenerate_FeaturedEveryFourthRow(t *testing.T) {
	for i, p := range generate(t) {
		idx := i + 1
		assert.Equal(t, idx%4 == 0, p.Featured, "row %d", idx)
	}
}

func TestGenerate_InventoryStatusCycles(t *testing.T) {
	statuses := domain.InventoryStatuses()
	for i, p := range generate(t) {
		idx := i + 1
		assert.Equal(t, statuses[idx%len(statuses)], p.InventoryStatus, "row %d", idx)
	}
}

func TestGenerate_SerialNumbers(t *testing.T) {
	products := generate(t)

	assert.Equal(t, "FS-2026-001", products[0].SerialNumber)
	assert.Equal(t, "FS-2075-050", products[49].SerialNumber)
	for i, p := range products {
		idx := i + 1
		assert.Equal(t, fmt.Sprintf("FS-%04d-%03d", 2025+idx, idx), p.SerialNumber)
	}
}

func TestGenerate_Timestamps(t *testing.T) {
	for i, p := range generate(t) {
		idx := i + 1
		wantCreated := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, idx)
		assert.Equal(t, wantCreated, p.CreatedAt, "row %d", idx)
		assert.Equal(t, wantCreated.Add(6*time.Hour), p.UpdatedAt, "row %d", idx)
	}
}

func TestGenerate_NumericRanges(t *testing.T) {
	for i, p := range generate(t) {
		idx := i + 1
		assert.GreaterOrEqual(t, p.Price, 19.0, "row %d price", idx)
		assert.LessOrEqual(t, p.Price, 199.0, "row %d price", idx)
		assert.GreaterOrEqual(t, p.Rating, 3.6, "row %d rating", idx)
		assert.LessOrEqual(t, p.Rating, 4.9, "row %d rating", idx)
		assert.GreaterOrEqual(t, p.ReviewCount, 12, "row %d reviewCount", idx)
		assert.LessOrEqual(t, p.ReviewCount, 420, "row %d reviewCount", idx)
		assert.GreaterOrEqual(t, p.Stock, 0, "row %d stock", idx)
		assert.LessOrEqual(t, p.Stock, 250, "row %d stock", idx)
		assert.Equal(t, "USD", p.Currency, "row %d", idx)
	}
}

func TestGenerate_FirstRowKnownValues(t *testing.T) {
	p := generate(t)[0]

	assert.Equal(t, "Aurora Dashboard Kit", p.Name)
	assert.Equal(t, "aurora-dashboard-kit", p.Slug)
	assert.Equal(t, "FS-2026-001", p.SerialNumber)
	assert.False(t, p.Featured)
	// Index 1 picks the second entry of the fixed status list.
	assert.Equal(t, domain.InventoryStatusLowStock, p.InventoryStatus)
	assert.Equal(t, "Aurora Dashboard Kit to accelerate modern product teams.", p.Summary)
	assert.Equal(t, "https://cdn.frontendshop.dev/products/aurora-dashboard-kit.jpg", p.ImageURL)
	assert.Equal(t, "https://cdn.frontendshop.dev/products/aurora-dashboard-kit-thumb.jpg", p.ThumbnailURL)
}

func TestGenerate_MalformedBadgeList(t *testing.T) {
	g := &Generator{
		rng:      rand.New(rand.NewSource(1)),
		names:    []string{"Solo Product"},
		badges:   []string{"Only One"},
		tags:     Tags,
		statuses: domain.InventoryStatuses(),
	}

	_, err := g.Generate()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "badge list")
}

func TestGenerate_MalformedTagList(t *testing.T) {
	g := &Generator{
		rng:      rand.New(rand.NewSource(1)),
		names:    []string{"Solo Product"},
		badges:   Badges,
		tags:     []string{"UI", "UX"},
		statuses: domain.InventoryStatuses(),
	}

	_, err := g.Generate()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "tag list")
}
