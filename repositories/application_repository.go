package repositories

import (
	"context"
	"errors"
	"log"

	"dorm-management-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository persists dorm applications. Status and history are
// stored as their literal string forms.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// FindByStudent returns the student's application, or nil when there is none.
func (r *ApplicationRepository) FindByStudent(ctx context.Context, student *models.Student) (*models.DormApplication, error) {
	var app models.DormApplication
	err := r.db.WithContext(ctx).Where("studentId = ?", student.ID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", "application for student "+student.StudentID, err)
	}
	app.Student = student
	return &app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.DormApplication, error) {
	var app models.DormApplication
	err := r.db.WithContext(ctx).Preload("Student").Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", "application "+id, err)
	}
	return &app, nil
}

// FindByIDs loads several applications. Unknown ids are skipped.
func (r *ApplicationRepository) FindByIDs(ctx context.Context, ids []string) ([]*models.DormApplication, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var apps []*models.DormApplication
	if err := r.db.WithContext(ctx).Preload("Student").Where("id IN ?", ids).Find(&apps).Error; err != nil {
		return nil, wrap("find", "applications", err)
	}
	return withStudents(apps), nil
}

// FindAll returns every application whose student still exists.
func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*models.DormApplication, error) {
	var apps []*models.DormApplication
	if err := r.db.WithContext(ctx).Preload("Student").Find(&apps).Error; err != nil {
		return nil, wrap("find", "all applications", err)
	}
	return withStudents(apps), nil
}

func withStudents(apps []*models.DormApplication) []*models.DormApplication {
	out := apps[:0]
	for _, app := range apps {
		if app.Student == nil {
			log.Printf("Warning: application %s references missing student %s, skipping", app.ID, app.StudentRef)
			continue
		}
		out = append(out, app)
	}
	return out
}

func (r *ApplicationRepository) Save(ctx context.Context, app *models.DormApplication) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(app).Error
	return wrap("save", "application "+app.ID, err)
}

// Update writes the mutable columns of an application.
func (r *ApplicationRepository) Update(ctx context.Context, app *models.DormApplication) error {
	err := r.db.WithContext(ctx).Model(&models.DormApplication{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"status":          app.Status,
			"adminNote":       app.AdminNote,
			"submittedDate":   app.SubmittedDate,
			"responseHistory": app.ResponseHistory,
		}).Error
	return wrap("update", "application "+app.ID, err)
}

func (r *ApplicationRepository) Delete(ctx context.Context, app *models.DormApplication) error {
	err := r.db.WithContext(ctx).Where("id = ?", app.ID).Delete(&models.DormApplication{}).Error
	return wrap("delete", "application "+app.ID, err)
}
