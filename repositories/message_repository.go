package repositories

import (
	"context"
	"errors"

	"dorm-management-api/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// FindByUser lists messages sent or received by username, newest first.
func (r *MessageRepository) FindByUser(ctx context.Context, username string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("fromUser = ? OR toUser = ?", username, username).
		Order("sentAt DESC").
		Find(&messages).Error
	if err != nil {
		return nil, wrap("find", "messages for "+username, err)
	}
	return messages, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", "message "+id, err)
	}
	return &message, nil
}

func (r *MessageRepository) Save(ctx context.Context, message *models.Message) error {
	return wrap("save", "message "+message.ID, r.db.WithContext(ctx).Create(message).Error)
}

// Update only persists the read flag; message content is immutable.
func (r *MessageRepository) Update(ctx context.Context, message *models.Message) error {
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", message.ID).
		Update("isRead", message.IsRead).Error
	return wrap("update", "message "+message.ID, err)
}
