package domain

import (
	"math"
	"strconv"
	"time"
)

// Inventory status constants, in cyclic assignment order.
const (
	InventoryStatusInStock    = "IN_STOCK"
	InventoryStatusLowStock   = "LOW_STOCK"
	InventoryStatusOutOfStock = "OUT_OF_STOCK"
	InventoryStatusPreorder   = "PREORDER"
)

// InventoryStatuses returns the fixed-order status list. Rows are assigned a
// status by row index modulo the list length, so the order is load-bearing.
func InventoryStatuses() []string {
	return []string{
		InventoryStatusInStock,
		InventoryStatusLowStock,
		InventoryStatusOutOfStock,
		InventoryStatusPreorder,
	}
}

// IsValidInventoryStatus checks whether the given string is a known inventory status.
func IsValidInventoryStatus(status string) bool {
	for _, s := range InventoryStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Product represents one generated catalog fixture row.
//
// OriginalPrice is kept as a pre-formatted decimal string rather than a
// nullable number: the empty string means the row has no original price and
// serializes as an empty CSV cell, keeping the output byte-stable.
type Product struct {
	Name            string    `json:"name" validate:"required"`
	Slug            string    `json:"slug" validate:"required"`
	Summary         string    `json:"summary" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Price           float64   `json:"price" validate:"gte=19,lte=199"`
	OriginalPrice   string    `json:"original_price,omitempty"`
	Currency        string    `json:"currency" validate:"len=3"`
	ImageURL        string    `json:"image_url" validate:"required,url"`
	ThumbnailURL    string    `json:"thumbnail_url" validate:"required,url"`
	Badges          []string  `json:"badges" validate:"max=2"`
	Tags            []string  `json:"tags" validate:"min=2,max=4"`
	Rating          float64   `json:"rating" validate:"gte=3.6,lte=4.9"`
	ReviewCount     int       `json:"review_count" validate:"gte=12,lte=420"`
	InventoryStatus string    `json:"inventory_status" validate:"oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK PREORDER"`
	Featured        bool      `json:"featured"`
	SerialNumber    string    `json:"serial_number" validate:"required"`
	Stock           int       `json:"stock" validate:"gte=0,lte=250"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PriceCents returns the price in integer cents for database storage.
func (p *Product) PriceCents() int64 {
	return int64(math.Round(p.Price * 100))
}

// OriginalPriceCents parses the pre-formatted original price into integer
// cents. ok is false when the row has no original price.
func (p *Product) OriginalPriceCents() (cents int64, ok bool) {
	if p.OriginalPrice == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.OriginalPrice, 64)
	if err != nil {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}
