package persistence

import (
	"context"
	"errors"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByUser returns a user's orders with items, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns orders matching the query, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, query trade.OrderQuery, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	q := r.applyQuery(r.db.WithContext(ctx).Model(&trade.Order{}), query)
	q = applyPagination(q, filter, "created_at DESC")

	if err := q.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecent returns the most recent orders, capped at limit
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]trade.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order and its items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Count counts all orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumPaidRevenue sums the total amount of paid orders
func (r *GormOrderRepository) SumPaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("payment_status = ?", trade.PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// applyQuery applies the admin order listing filters
func (r *GormOrderRepository) applyQuery(q *gorm.DB, query trade.OrderQuery) *gorm.DB {
	if query.Status != nil {
		q = q.Where("status = ?", *query.Status)
	}
	if query.DateFrom != nil {
		q = q.Where("created_at >= ?", *query.DateFrom)
	}
	if query.DateTo != nil {
		q = q.Where("created_at <= ?", *query.DateTo)
	}
	return q
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
