package comparison

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository defines the interface for comparison history persistence
type RecordRepository interface {
	// Save appends a comparison record
	Save(ctx context.Context, record *Record) error

	// FindByUser returns the user's own records, most recent first,
	// capped at limit entries
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)
}
