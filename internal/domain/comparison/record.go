package comparison

import (
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Record is one entry in a user's comparison history.
// Records are append-only: created once per authenticated comparison,
// never mutated by this component.
type Record struct {
	shared.BaseAggregateRoot
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	LeftProductID  uuid.UUID `gorm:"type:uuid;not null"`
	RightProductID uuid.UUID `gorm:"type:uuid;not null"`
	ComparedAt     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "comparison_records"
}

// NewRecord creates a new comparison history record
func NewRecord(userID, leftProductID, rightProductID uuid.UUID) (*Record, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if leftProductID == uuid.Nil || rightProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Both product IDs are required")
	}

	return &Record{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		LeftProductID:     leftProductID,
		RightProductID:    rightProductID,
		ComparedAt:        time.Now(),
	}, nil
}
