package catalog

import (
	"time"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name           string            `json:"name" binding:"required,min=1,max=200"`
	Description    string            `json:"description" binding:"max=5000"`
	Brand          string            `json:"brand" binding:"max=100"`
	Price          decimal.Decimal   `json:"price" binding:"required"`
	StockQuantity  int               `json:"stock_quantity" binding:"min=0"`
	CategoryID     *uuid.UUID        `json:"category_id"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name           *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Description    *string            `json:"description" binding:"omitempty,max=5000"`
	Brand          *string            `json:"brand" binding:"omitempty,max=100"`
	Price          *decimal.Decimal   `json:"price"`
	StockQuantity  *int               `json:"stock_quantity" binding:"omitempty,min=0"`
	CategoryID     *uuid.UUID         `json:"category_id"`
	Images         *[]string          `json:"images"`
	Specifications *map[string]string `json:"specifications"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Brand          string            `json:"brand"`
	Price          decimal.Decimal   `json:"price"`
	StockQuantity  int               `json:"stock_quantity"`
	CategoryID     *uuid.UUID        `json:"category_id"`
	Status         string            `json:"status"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ProductListResponse represents a list item for products
type ProductListResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	Status        string          `json:"status"`
	Image         string          `json:"image"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Brand      string     `form:"brand"`
	MinPrice   *float64   `form:"min_price"`
	MaxPrice   *float64   `form:"max_price"`
	Page       int        `form:"page" binding:"min=0"`
	PageSize   int        `form:"page_size" binding:"min=0,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=1000"`
	ImageURL    string     `json:"image_url" binding:"max=500"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	ParentID     *uuid.UUID `json:"parent_id"`
	ProductCount int64      `json:"product_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// InitiateImageUploadRequest represents a request for a presigned image upload
type InitiateImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}

// InitiateImageUploadResponse carries the presigned upload URL
type InitiateImageUploadResponse struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ImageURL   string    `json:"image_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Brand:          p.Brand,
		Price:          p.Price,
		StockQuantity:  p.StockQuantity,
		CategoryID:     p.CategoryID,
		Status:         string(p.Status),
		Images:         p.GetImages(),
		Specifications: p.GetSpecifications(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	return ProductListResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		Status:        string(p.Status),
		Image:         p.FirstImage(),
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductListResponses converts a slice of domain Products to ProductListResponses
func ToProductListResponses(products []catalog.Product) []ProductListResponse {
	responses := make([]ProductListResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductListResponse(&p)
	}
	return responses
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category, productCount int64) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		ParentID:     c.ParentID,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
	}
}
