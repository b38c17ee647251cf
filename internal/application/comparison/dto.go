package comparison

import (
	"time"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/comparison"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSummary is the display projection of a compared product
type ProductSummary struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Brand  string          `json:"brand"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

// AttributeComparison is one row of the comparison table
type AttributeComparison struct {
	LeftValue  string            `json:"left_value"`
	RightValue string            `json:"right_value"`
	Winner     comparison.Winner `json:"winner"`
}

// CompareResponse is the full comparison result.
// Rows is keyed by attribute name; every key present on either side
// appears exactly once.
type CompareResponse struct {
	Left  ProductSummary                 `json:"left"`
	Right ProductSummary                 `json:"right"`
	Rows  map[string]AttributeComparison `json:"rows"`
}

// HistoryEntry is one entry of a user's comparison history
type HistoryEntry struct {
	ID               uuid.UUID `json:"id"`
	LeftProductID    uuid.UUID `json:"left_product_id"`
	RightProductID   uuid.UUID `json:"right_product_id"`
	LeftProductName  string    `json:"left_product_name"`
	RightProductName string    `json:"right_product_name"`
	ComparedAt       time.Time `json:"compared_at"`
}

// ToProductSummary converts a domain Product to its comparison projection
func ToProductSummary(p *catalog.Product) ProductSummary {
	return ProductSummary{
		ID:     p.ID,
		Name:   p.Name,
		Brand:  p.Brand,
		Price:  p.Price,
		Images: p.GetImages(),
	}
}
