package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll finds all products matching the query and filter
func (r *GormProductRepository) FindAll(ctx context.Context, query catalog.ProductQuery, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	q := r.applyQuery(r.db.WithContext(ctx).Model(&catalog.Product{}), query)
	q = applyPagination(q, filter, "created_at DESC")

	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search finds active products whose name or brand matches the term
func (r *GormProductRepository) Search(ctx context.Context, term string, limit int) ([]catalog.Product, error) {
	if strings.TrimSpace(term) == "" {
		return []catalog.Product{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + strings.TrimSpace(term) + "%"
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("status = ?", catalog.ProductStatusActive).
		Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindBrands returns the distinct non-empty brands of active products
func (r *GormProductRepository) FindBrands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("status = ? AND brand != ''", catalog.ProductStatusActive).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts products matching the query
func (r *GormProductRepository) Count(ctx context.Context, query catalog.ProductQuery) (int64, error) {
	var count int64
	q := r.applyQuery(r.db.WithContext(ctx).Model(&catalog.Product{}), query)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory counts active products in a specific category
func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("category_id = ? AND status = ?", categoryID, catalog.ProductStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyQuery applies the storefront listing filters
func (r *GormProductRepository) applyQuery(q *gorm.DB, query catalog.ProductQuery) *gorm.DB {
	if query.CategoryID != nil {
		q = q.Where("category_id = ?", *query.CategoryID)
	}
	if query.Brand != "" {
		q = q.Where("brand = ?", query.Brand)
	}
	if query.MinPrice != nil {
		q = q.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		q = q.Where("price <= ?", *query.MaxPrice)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	return q
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
