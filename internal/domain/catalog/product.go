package catalog

import (
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a sellable item in the storefront catalog.
// It is the aggregate root for product-related operations.
// Images and Specifications are stored as JSON text blobs and decoded
// on read with the lenient codec in attributes.go.
type Product struct {
	shared.BaseAggregateRoot
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Description    string          `gorm:"type:text"`
	Brand          string          `gorm:"type:varchar(100);index"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	StockQuantity  int             `gorm:"not null;default:0"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Status         ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	Images         string          `gorm:"type:jsonb"` // JSON array of image URLs
	Specifications string          `gorm:"type:jsonb"` // JSON object of attribute name -> value
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description, brand string, price decimal.Decimal, stock int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Brand:             brand,
		Price:             price,
		StockQuantity:     stock,
		Status:            ProductStatusActive,
		Images:            "[]",
		Specifications:    "{}",
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, brand string, price decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Brand = brand
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory sets the product category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStock replaces the stock quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ReserveStock decrements the stock quantity for a committed order line
func (p *Product) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.StockQuantity < quantity {
		return shared.ErrInsufficientStock
	}

	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImages replaces the image list, stored as a JSON array blob
func (p *Product) SetImages(images []string) {
	p.Images = EncodeImages(images)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetSpecifications replaces the specification map, stored as a JSON object blob
func (p *Product) SetSpecifications(specs map[string]string) {
	p.Specifications = EncodeAttributes(specs)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// GetImages decodes the image list blob. Malformed blobs yield an empty list.
func (p *Product) GetImages() []string {
	return DecodeImages(p.Images)
}

// FirstImage returns the first image URL or the default placeholder
func (p *Product) FirstImage() string {
	images := p.GetImages()
	if len(images) == 0 {
		return DefaultImageURL
	}
	return images[0]
}

// GetSpecifications decodes the specification blob.
// Malformed blobs yield an empty map.
func (p *Product) GetSpecifications() map[string]string {
	return DecodeAttributes(p.Specifications)
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// InStock returns true if at least the given quantity is available
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
