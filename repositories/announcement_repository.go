package repositories

import (
	"context"
	"errors"

	"dorm-management-api/models"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := r.db.WithContext(ctx).Order("createdAt DESC").Find(&announcements).Error; err != nil {
		return nil, wrap("find", "announcements", err)
	}
	return announcements, nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", "announcement "+id, err)
	}
	return &announcement, nil
}

func (r *AnnouncementRepository) Save(ctx context.Context, a *models.Announcement) error {
	return wrap("save", "announcement "+a.ID, r.db.WithContext(ctx).Create(a).Error)
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	err := r.db.WithContext(ctx).Model(&models.Announcement{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{"title": a.Title, "body": a.Body}).Error
	return wrap("update", "announcement "+a.ID, err)
}

func (r *AnnouncementRepository) Delete(ctx context.Context, a *models.Announcement) error {
	err := r.db.WithContext(ctx).Where("id = ?", a.ID).Delete(&models.Announcement{}).Error
	return wrap("delete", "announcement "+a.ID, err)
}
