package services

import (
	"context"
	"strings"
	"time"

	"dorm-management-api/models"
	"dorm-management-api/utils"

	"github.com/google/uuid"
)

type AnnouncementService struct {
	announcements AnnouncementStore
	now           func() time.Time
	newID         func() string
}

func NewAnnouncementService(announcements AnnouncementStore) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, now: time.Now, newID: uuid.NewString}
}

// List returns announcements newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements.FindAll(ctx)
}

func (s *AnnouncementService) Create(ctx context.Context, req models.AnnouncementCreateRequest, createdBy string) (*models.Announcement, error) {
	title := utils.SanitizeInput(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return nil, invalid("Title and content required")
	}
	a := &models.Announcement{
		ID:        s.newID(),
		Title:     title,
		Body:      body,
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	}
	if err := s.announcements.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id string, req models.AnnouncementUpdateRequest) (*models.Announcement, error) {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnnouncementNotFound
	}
	if req.Title != nil {
		a.Title = utils.SanitizeInput(*req.Title)
	}
	if req.Body != nil {
		a.Body = strings.TrimSpace(*req.Body)
	}
	if a.Title == "" || a.Body == "" {
		return nil, invalid("Title and content required")
	}
	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAnnouncementNotFound
	}
	return s.announcements.Delete(ctx, a)
}
