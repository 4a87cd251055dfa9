// Package export serializes generated catalog rows to the fixture CSV file.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/frontendshop/fixturegen/internal/domain"
)

// Columns is the fixed CSV header, in output order.
var Columns = []string{
	"name",
	"slug",
	"summary",
	"description",
	"price",
	"originalPrice",
	"currency",
	"imageUrl",
	"thumbnailUrl",
	"badges",
	"tags",
	"rating",
	"reviewCount",
	"inventoryStatus",
	"featured",
	"serialNumber",
	"stock",
	"createdAt",
	"updatedAt",
}

// timeLayout is the fixture timestamp convention: second-resolution ISO-8601
// with a literal Z appended.
const timeLayout = "2006-01-02T15:04:05"

// Record serializes a product row into CSV fields in Columns order.
func Record(p *domain.Product) ([]string, error) {
	badges, err := jsonArray(p.Badges)
	if err != nil {
		return nil, fmt.Errorf("encode badges: %w", err)
	}
	tags, err := jsonArray(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	featured := "FALSE"
	if p.Featured {
		featured = "TRUE"
	}

	return []string{
		p.Name,
		p.Slug,
		p.Summary,
		p.Description,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		p.OriginalPrice,
		p.Currency,
		p.ImageURL,
		p.ThumbnailURL,
		badges,
		tags,
		strconv.FormatFloat(p.Rating, 'f', 2, 64),
		strconv.Itoa(p.ReviewCount),
		p.InventoryStatus,
		featured,
		p.SerialNumber,
		strconv.Itoa(p.Stock),
		p.CreatedAt.UTC().Format(timeLayout) + "Z",
		p.UpdatedAt.UTC().Format(timeLayout) + "Z",
	}, nil
}

// jsonArray encodes values as a compact JSON array, emitting [] rather than
// null for an empty slice.
func jsonArray(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteCSV writes the header plus one line per product to path, overwriting
// any existing file. Parent directories are created as needed. The file is
// closed on all exit paths; write failures propagate to the caller.
func WriteCSV(path string, products []domain.Product) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range products {
		record, err := Record(&products[i])
		if err != nil {
			return fmt.Errorf("serialize row %d: %w", i+1, err)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
