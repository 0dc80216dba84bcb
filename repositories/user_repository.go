package repositories

import (
	"context"
	"errors"

	"dorm-management-api/models"

	"gorm.io/gorm"
)

// UserRepository persists staff accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find", "user "+username, err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, wrap("find", "users", err)
	}
	return users, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("role = ?", string(role)).Find(&users).Error; err != nil {
		return nil, wrap("find", "users with role "+string(role), err)
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return wrap("save", "user "+user.Username, r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) Delete(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Where("id = ?", user.ID).Delete(&models.User{}).Error
	return wrap("delete", "user "+user.Username, err)
}

// UpdatePassword stores an already hashed password.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hashed).Error
	return wrap("update", "user password", err)
}
