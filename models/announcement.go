package models

import "time"

type Announcement struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	CreatedBy string    `gorm:"column:createdBy" json:"created_by"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"created_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// AnnouncementCreateRequest is the payload for publishing an announcement.
type AnnouncementCreateRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required"`
}

// AnnouncementUpdateRequest edits title and/or body.
type AnnouncementUpdateRequest struct {
	Title *string `json:"title" binding:"omitempty,max=255"`
	Body  *string `json:"body"`
}
