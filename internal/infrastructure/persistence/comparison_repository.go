package persistence

import (
	"context"

	"github.com/electrostore/backend/internal/domain/comparison"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormComparisonRepository implements RecordRepository using GORM
type GormComparisonRepository struct {
	db *gorm.DB
}

// NewGormComparisonRepository creates a new GormComparisonRepository
func NewGormComparisonRepository(db *gorm.DB) *GormComparisonRepository {
	return &GormComparisonRepository{db: db}
}

// Save appends a comparison record
func (r *GormComparisonRepository) Save(ctx context.Context, record *comparison.Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByUser returns the user's own records, most recent first
func (r *GormComparisonRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]comparison.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []comparison.Record
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("compared_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormComparisonRepository implements RecordRepository
var _ comparison.RecordRepository = (*GormComparisonRepository)(nil)
