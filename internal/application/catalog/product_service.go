package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// imageUploadExpiry bounds how long a presigned upload URL stays valid
const imageUploadExpiry = 15 * time.Minute

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	storage     ObjectStorageService
	logger      *zap.Logger
}

// NewProductService creates a new product service.
// storage may be nil when object storage is disabled; image uploads then
// return an error while the rest of the catalog keeps working.
func NewProductService(
	productRepo catalog.ProductRepository,
	storage ObjectStorageService,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storage:     storage,
		logger:      logger,
	}
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Brand, req.Price, req.StockQuantity)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if len(req.Images) > 0 {
		product.SetImages(req.Images)
	}
	if len(req.Specifications) > 0 {
		product.SetSpecifications(req.Specifications)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// ListProducts returns a paginated product listing
func (s *ProductService) ListProducts(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductListResponse], error) {
	query := catalog.ProductQuery{
		CategoryID: filter.CategoryID,
		Brand:      filter.Brand,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		Search:     filter.Search,
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = filter.OrderBy
	domainFilter.OrderDir = filter.OrderDir

	products, err := s.productRepo.FindAll(ctx, query, domainFilter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}

	total, err := s.productRepo.Count(ctx, query)
	if err != nil {
		s.logger.Error("Failed to count products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}

	result := shared.NewPaginated(ToProductListResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// SearchProducts finds active products matching the term
func (s *ProductService) SearchProducts(ctx context.Context, term string, limit int) ([]ProductListResponse, error) {
	products, err := s.productRepo.Search(ctx, term, limit)
	if err != nil {
		s.logger.Error("Failed to search products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Search failed")
	}
	return ToProductListResponses(products), nil
}

// ListBrands returns the distinct brands of active products
func (s *ProductService) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := s.productRepo.FindBrands(ctx)
	if err != nil {
		s.logger.Error("Failed to list brands", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list brands")
	}
	return brands, nil
}

// UpdateProduct updates a product's details
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	description := product.Description
	brand := product.Brand
	price := product.Price

	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Brand != nil {
		brand = *req.Brand
	}
	if req.Price != nil {
		price = *req.Price
	}

	if err := product.Update(name, description, brand, price); err != nil {
		return nil, err
	}

	if req.StockQuantity != nil {
		if err := product.SetStock(*req.StockQuantity); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if req.Images != nil {
		product.SetImages(*req.Images)
	}
	if req.Specifications != nil {
		product.SetSpecifications(*req.Specifications)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to update product",
			zap.String("product_id", id.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// SetProductStatus activates or deactivates a product
func (s *ProductService) SetProductStatus(ctx context.Context, id uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		err = product.Activate()
	} else {
		err = product.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to change product status",
			zap.String("product_id", id.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change product status")
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

// InitiateImageUpload returns a presigned URL for uploading a product image
func (s *ProductService) InitiateImageUpload(ctx context.Context, productID uuid.UUID, req InitiateImageUploadRequest) (*InitiateImageUploadResponse, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Object storage is not configured")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Only image uploads are allowed")
	}

	ext := path.Ext(req.FileName)
	storageKey := fmt.Sprintf("products/%s/%s%s", productID, uuid.New(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, imageUploadExpiry)
	if err != nil {
		s.logger.Error("Failed to generate upload URL",
			zap.String("product_id", productID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate upload URL")
	}

	return &InitiateImageUploadResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ImageURL:   "/" + storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}
