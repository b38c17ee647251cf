package persistence

import (
	"context"

	"github.com/electrostore/backend/internal/domain/chat"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChatMessageRepository implements MessageRepository using GORM
type GormChatMessageRepository struct {
	db *gorm.DB
}

// NewGormChatMessageRepository creates a new GormChatMessageRepository
func NewGormChatMessageRepository(db *gorm.DB) *GormChatMessageRepository {
	return &GormChatMessageRepository{db: db}
}

// Save appends a conversation turn
func (r *GormChatMessageRepository) Save(ctx context.Context, message *chat.Message) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// FindByUser returns a user's conversation turns, most recent first
func (r *GormChatMessageRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []chat.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Ensure GormChatMessageRepository implements MessageRepository
var _ chat.MessageRepository = (*GormChatMessageRepository)(nil)
