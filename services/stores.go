package services

import (
	"context"

	"dorm-management-api/models"
)

// StudentStore is the student persistence the services depend on. Lookups
// return (nil, nil) when nothing matches.
type StudentStore interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	FindByUsername(ctx context.Context, username string) (*models.Student, error)
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByBuilding(ctx context.Context, building string) ([]models.Student, error)
	Save(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	UpdatePassword(ctx context.Context, id, hashed string) error
}

// ApplicationStore persists dorm applications, one per student.
type ApplicationStore interface {
	FindByStudent(ctx context.Context, student *models.Student) (*models.DormApplication, error)
	FindByID(ctx context.Context, id string) (*models.DormApplication, error)
	FindByIDs(ctx context.Context, ids []string) ([]*models.DormApplication, error)
	FindAll(ctx context.Context) ([]*models.DormApplication, error)
	Save(ctx context.Context, app *models.DormApplication) error
	Update(ctx context.Context, app *models.DormApplication) error
	Delete(ctx context.Context, app *models.DormApplication) error
}

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, hashed string) error
}

type MessageStore interface {
	FindByUser(ctx context.Context, username string) ([]models.Message, error)
	FindByID(ctx context.Context, id string) (*models.Message, error)
	Save(ctx context.Context, message *models.Message) error
	Update(ctx context.Context, message *models.Message) error
}

type AnnouncementStore interface {
	FindAll(ctx context.Context) ([]models.Announcement, error)
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	Save(ctx context.Context, a *models.Announcement) error
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, a *models.Announcement) error
}

// Messenger queues a message from one username to another.
type Messenger interface {
	Send(ctx context.Context, from, to, content string) (*models.Message, error)
}
