package catalog

import (
	"context"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductQuery carries the storefront listing filters
type ProductQuery struct {
	CategoryID *uuid.UUID
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the query and filter
	FindAll(ctx context.Context, query ProductQuery, filter shared.Filter) ([]Product, error)

	// Search finds active products whose name or brand matches the term,
	// capped at limit results
	Search(ctx context.Context, term string, limit int) ([]Product, error)

	// FindBrands returns the distinct non-empty brands of active products
	FindBrands(ctx context.Context) ([]string, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the query
	Count(ctx context.Context, query ProductQuery) (int64, error)

	// CountByCategory counts active products in a specific category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll finds all categories
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// ExistsByName checks if a category with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}
