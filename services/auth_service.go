package services

import (
	"context"
	"log"
	"strings"

	"dorm-management-api/models"
	"dorm-management-api/utils"

	"github.com/google/uuid"
)

// Principal is whoever logged in: a staff user or a student.
type Principal struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Role        models.Role     `json:"role"`
	User        *models.User    `json:"-"`
	Student     *models.Student `json:"-"`
}

func staffPrincipal(u *models.User) *Principal {
	return &Principal{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName, Role: u.Role, User: u}
}

func studentPrincipal(s *models.Student) *Principal {
	return &Principal{ID: s.ID, Username: s.Username, DisplayName: s.DisplayName, Role: models.RoleStudent, Student: s}
}

// RegisterInput is the student self-registration form.
type RegisterInput struct {
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	FullName  string         `json:"full_name"`
	StudentID string         `json:"student_id"`
	Gender    models.Gender  `json:"gender"`
	College   models.College `json:"college"`
}

// StaffInput creates an admin account.
type StaffInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// AuthService handles login, registration and staff accounts.
type AuthService struct {
	users    UserStore
	students StudentStore
	newID    func() string
}

func NewAuthService(users UserStore, students StudentStore) *AuthService {
	return &AuthService{users: users, students: students, newID: uuid.NewString}
}

// Authenticate checks staff accounts first, then students. Plaintext
// passwords left over from older data are accepted and re-hashed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil && utils.CheckPassword(user.Password, password) {
		if !utils.IsHashedPassword(user.Password) {
			s.upgradePassword(ctx, "user", user.ID, password, s.users.UpdatePassword)
		}
		return staffPrincipal(user), nil
	}

	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if student != nil && utils.CheckPassword(student.Password, password) {
		if !utils.IsHashedPassword(student.Password) {
			s.upgradePassword(ctx, "student", student.ID, password, s.students.UpdatePassword)
		}
		return studentPrincipal(student), nil
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) upgradePassword(ctx context.Context, kind, id, password string, update func(context.Context, string, string) error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash password for %s %s: %v", kind, id, err)
		return
	}
	if err := update(ctx, id, hashed); err != nil {
		log.Printf("Failed to upgrade password for %s %s: %v", kind, id, err)
	}
}

// IsUsernameAvailable checks both staff and students.
func (s *AuthService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || user != nil {
		return false, err
	}
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil || student != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) IsStudentIDAvailable(ctx context.Context, studentID string) (bool, error) {
	student, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		return false, err
	}
	return student == nil, nil
}

// RegisterStudent validates the form and creates the student account.
func (s *AuthService) RegisterStudent(ctx context.Context, in RegisterInput) (*models.Student, error) {
	in.Username = utils.SanitizeInput(in.Username)
	in.FullName = utils.SanitizeInput(in.FullName)
	in.StudentID = utils.NormalizeStudentID(in.StudentID)
	in.Gender = models.Gender(strings.ToUpper(strings.TrimSpace(string(in.Gender))))
	in.College = models.College(strings.ToUpper(strings.TrimSpace(string(in.College))))

	if in.Username == "" || in.Password == "" || in.FullName == "" {
		return nil, invalid("Username, password and full name are required")
	}
	if msg := utils.ValidateStudentIDFormat(in.StudentID); msg != "" {
		return nil, invalid(msg)
	}
	if ok, msg := utils.ValidatePassword(in.Password); !ok {
		return nil, invalid(msg)
	}
	if !in.Gender.Valid() {
		return nil, invalid("Gender is required")
	}
	if in.College != "" && !in.College.Valid() {
		if c, ok := models.CollegeByAcronym(string(in.College)); ok {
			in.College = c
		} else {
			return nil, invalid("Unknown college")
		}
	}

	available, err := s.IsUsernameAvailable(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrUsernameTaken
	}
	available, err = s.IsStudentIDAvailable(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrStudentIDTaken
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		ID:          s.newID(),
		Username:    in.Username,
		Password:    hashed,
		Role:        models.RoleStudent,
		DisplayName: in.FullName,
		StudentID:   in.StudentID,
		Gender:      in.Gender,
		College:     in.College,
	}
	if err := s.students.Save(ctx, student); err != nil {
		return nil, err
	}
	log.Printf("student %s registered as %s", student.StudentID, student.Username)
	return student, nil
}

// AccountExists lets the auth middleware reject tokens of removed accounts.
func (s *AuthService) AccountExists(ctx context.Context, username string, role models.Role) (bool, error) {
	if role == models.RoleStudent {
		student, err := s.students.FindByUsername(ctx, username)
		return student != nil, err
	}
	user, err := s.users.FindByUsername(ctx, username)
	return user != nil, err
}

// Staff lists staff accounts, optionally of one role.
func (s *AuthService) Staff(ctx context.Context, role models.Role) ([]models.User, error) {
	if role != "" {
		return s.users.FindByRole(ctx, role)
	}
	return s.users.FindAll(ctx)
}

// CreateAdmin adds an ADMIN account.
func (s *AuthService) CreateAdmin(ctx context.Context, in StaffInput) (*models.User, error) {
	in.Username = utils.SanitizeInput(in.Username)
	in.DisplayName = utils.SanitizeInput(in.DisplayName)
	if in.Username == "" || in.Password == "" || in.DisplayName == "" {
		return nil, invalid("All fields required")
	}
	available, err := s.IsUsernameAvailable(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrUsernameTaken
	}
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:          s.newID(),
		Username:    in.Username,
		Password:    hashed,
		Role:        models.RoleAdmin,
		DisplayName: in.DisplayName,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveStaff deletes a staff account. Owners cannot be removed.
func (s *AuthService) RemoveStaff(ctx context.Context, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == models.RoleOwner {
		return ErrCannotRemoveOwner
	}
	return s.users.Delete(ctx, user)
}
