package persistence

import (
	"context"
	"errors"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartItemRepository implements CartItemRepository using GORM
type GormCartItemRepository struct {
	db *gorm.DB
}

// NewGormCartItemRepository creates a new GormCartItemRepository
func NewGormCartItemRepository(db *gorm.DB) *GormCartItemRepository {
	return &GormCartItemRepository{db: db}
}

// FindByUser returns all cart lines for a user
func (r *GormCartItemRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]trade.CartItem, error) {
	var items []trade.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserAndProduct returns the user's line for a product, if any
func (r *GormCartItemRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*trade.CartItem, error) {
	var item trade.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByID finds a cart line by ID
func (r *GormCartItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.CartItem, error) {
	var item trade.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Save creates or updates a cart line
func (r *GormCartItemRepository) Save(ctx context.Context, item *trade.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a cart line
func (r *GormCartItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.CartItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all cart lines for a user
func (r *GormCartItemRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&trade.CartItem{}, "user_id = ?", userID).Error
}

// CountByUser returns the summed quantity of the user's cart lines
func (r *GormCartItemRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&trade.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Ensure GormCartItemRepository implements CartItemRepository
var _ trade.CartItemRepository = (*GormCartItemRepository)(nil)
