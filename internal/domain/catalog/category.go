package catalog

import (
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category represents a product category in the storefront catalog.
// Categories form a flat tree: a category may reference a parent.
type Category struct {
	shared.BaseAggregateRoot
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new root category
func NewCategory(name, description string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
	}, nil
}

// NewChildCategory creates a new category under a parent
func NewChildCategory(name, description string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}

	category, err := NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	category.ParentID = &parent.ID

	return category, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetImage sets the category's display image URL
func (c *Category) SetImage(url string) {
	c.ImageURL = url
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// validateCategoryName validates the category name
func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
