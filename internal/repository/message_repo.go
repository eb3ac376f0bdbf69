package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/db"
)

// MessageRepository provides data access methods for the Message model.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Send appends one unread message to a match.
func (r *MessageRepository) Send(ctx context.Context, matchID, senderID, receiverID uint64, content string) (*db.Message, error) {
	if storeMissing(r.db, "send message") {
		return nil, nil
	}

	msg := db.Message{
		MatchID:    matchID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &msg, nil
}

// MarkRead flips every message of the match addressed to receiverID to read.
func (r *MessageRepository) MarkRead(ctx context.Context, matchID, receiverID uint64) error {
	if storeMissing(r.db, "mark messages read") {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("match_id = ? AND receiver_id = ? AND is_read = ?", matchID, receiverID, 0).
		Update("is_read", 1).Error
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

// ListByMatch returns up to limit messages of a match, oldest first.
func (r *MessageRepository) ListByMatch(ctx context.Context, matchID uint64, limit int) ([]db.Message, error) {
	if storeMissing(r.db, "list messages") {
		return []db.Message{}, nil
	}

	msgs := []db.Message{}
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// GetConversation marks the receiver's messages in the match as read, then
// returns the transcript. The read flags are committed before the rows are
// fetched, so the returned messages already reflect them.
func (r *MessageRepository) GetConversation(ctx context.Context, matchID, receiverID uint64, limit int) ([]db.Message, error) {
	if err := r.MarkRead(ctx, matchID, receiverID); err != nil {
		return nil, err
	}
	return r.ListByMatch(ctx, matchID, limit)
}

// CountUnread returns how many unread messages are addressed to receiverID.
func (r *MessageRepository) CountUnread(ctx context.Context, receiverID uint64) (int64, error) {
	if storeMissing(r.db, "count unread messages") {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, 0).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
