package models

import "time"

// Message is a queued note between two usernames.
type Message struct {
	ID       string    `gorm:"primaryKey;column:id" json:"id"`
	FromUser string    `gorm:"column:fromUser;index" json:"from_user"`
	ToUser   string    `gorm:"column:toUser;index" json:"to_user"`
	Content  string    `gorm:"column:content" json:"content"`
	SentAt   time.Time `gorm:"column:sentAt" json:"sent_at"`
	IsRead   bool      `gorm:"column:isRead" json:"is_read"`
}

func (Message) TableName() string { return "messages" }
