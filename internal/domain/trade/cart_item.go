package trade

import (
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartItem is one product line in a user's shopping cart
type CartItem struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_product,unique,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_product,unique,priority:2"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a new cart line
func NewCartItem(userID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ProductID:         productID,
		Quantity:          quantity,
	}, nil
}

// AddQuantity merges additional quantity into the line
func (i *CartItem) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity += quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetQuantity replaces the line quantity
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}
