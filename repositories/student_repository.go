package repositories

import (
	"context"
	"errors"

	"dorm-management-api/models"

	"gorm.io/gorm"
)

// StudentRepository persists students in the legacy `Student` table.
type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) findOne(ctx context.Context, resource, query string, arg interface{}) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where(query, arg).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", resource, err)
	}
	return &student, nil
}

// FindByID returns nil, nil when no student has the given row id.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	return r.findOne(ctx, "student "+id, "id = ?", id)
}

func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return r.findOne(ctx, "student "+studentID, "studentId = ?", studentID)
}

func (r *StudentRepository) FindByUsername(ctx context.Context, username string) (*models.Student, error) {
	return r.findOne(ctx, "student "+username, "username = ?", username)
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, wrap("find", "students", err)
	}
	return students, nil
}

func (r *StudentRepository) FindByBuilding(ctx context.Context, building string) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Where("assignedBuilding = ?", building).Find(&students).Error; err != nil {
		return nil, wrap("find", "students in "+building, err)
	}
	return students, nil
}

func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	return wrap("save", "student "+student.StudentID, r.db.WithContext(ctx).Create(student).Error)
}

// Update writes every column, including ones cleared to NULL.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	err := r.db.WithContext(ctx).Model(student).Select("*").Omit("id").Updates(student).Error
	return wrap("update", "student "+student.StudentID, err)
}

// UpdatePassword stores an already hashed password.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Update("password", hashed).Error
	return wrap("update", "student password", err)
}
