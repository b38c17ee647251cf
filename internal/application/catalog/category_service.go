package catalog

import (
	"context"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("Failed to check category name", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_NAME", "A category with this name already exists")
	}

	var category *catalog.Category
	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			return nil, shared.NewDomainError("PARENT_NOT_FOUND", "Parent category not found")
		}
		category, err = catalog.NewChildCategory(req.Name, req.Description, parent)
		if err != nil {
			return nil, err
		}
	} else {
		category, err = catalog.NewCategory(req.Name, req.Description)
		if err != nil {
			return nil, err
		}
	}

	if req.ImageURL != "" {
		category.SetImage(req.ImageURL)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to save category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name))

	resp := ToCategoryResponse(category, 0)
	return &resp, nil
}

// GetCategory retrieves a category with its active product count
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to count category products",
			zap.String("category_id", id.String()),
			zap.Error(err))
		count = 0
	}

	resp := ToCategoryResponse(category, count)
	return &resp, nil
}

// ListCategories returns all categories with their active product counts
func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list categories")
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		count, err := s.productRepo.CountByCategory(ctx, categories[i].ID)
		if err != nil {
			count = 0
		}
		responses[i] = ToCategoryResponse(&categories[i], count)
	}
	return responses, nil
}

// UpdateCategory updates a category's details
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := category.Name
	description := category.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	if name != category.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, name)
		if err != nil {
			s.logger.Error("Failed to check category name", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
		}
		if exists {
			return nil, shared.NewDomainError("DUPLICATE_NAME", "A category with this name already exists")
		}
	}

	if err := category.Update(name, description); err != nil {
		return nil, err
	}
	if req.ImageURL != nil {
		category.SetImage(*req.ImageURL)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		s.logger.Error("Failed to update category",
			zap.String("category_id", id.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
	}

	count, _ := s.productRepo.CountByCategory(ctx, id)
	resp := ToCategoryResponse(category, count)
	return &resp, nil
}

// DeleteCategory removes an empty category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count category products", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}
	if count > 0 {
		return shared.NewDomainError("CATEGORY_NOT_EMPTY", "Cannot delete a category that still has products")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Category deleted", zap.String("category_id", id.String()))
	return nil
}
