package trade

import (
	"context"
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemRepository defines the interface for cart persistence
type CartItemRepository interface {
	// FindByUser returns all cart lines for a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]CartItem, error)

	// FindByUserAndProduct returns the user's line for a product, if any
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*CartItem, error)

	// FindByID finds a cart line by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)

	// Save creates or updates a cart line
	Save(ctx context.Context, item *CartItem) error

	// Delete removes a cart line
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes all cart lines for a user
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// CountByUser returns the summed quantity of the user's cart lines
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// OrderQuery carries the admin order listing filters
type OrderQuery struct {
	Status   *OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUser returns a user's orders with items, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// FindAll returns orders matching the query, newest first
	FindAll(ctx context.Context, query OrderQuery, filter shared.Filter) ([]Order, error)

	// FindRecent returns the most recent orders, capped at limit
	FindRecent(ctx context.Context, limit int) ([]Order, error)

	// Save creates or updates an order and its items
	Save(ctx context.Context, order *Order) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// SumPaidRevenue sums the total amount of paid orders
	SumPaidRevenue(ctx context.Context) (decimal.Decimal, error)
}
