package services

import "errors"

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrStudentNotFound       = errors.New("student not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrAnnouncementNotFound  = errors.New("announcement not found")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username is already taken")
	ErrStudentIDTaken        = errors.New("student id is already registered")
	ErrNotReadyForAssignment = errors.New("application is not ready for assignment")
	ErrPhaseOneLocked        = errors.New("phase one can no longer be edited")
	ErrPhaseTwoClosed        = errors.New("complete Phase 1 first and wait for approval")
	ErrNoteRequired          = errors.New("reason is required for resubmit request")
	ErrCannotRemoveOwner     = errors.New("cannot remove owner")
	ErrNothingSelected       = errors.New("select applications first")
	ErrValidation            = errors.New("validation failed")
)

// ValidationError carries a message meant for the user. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(message string) error {
	return &ValidationError{Message: message}
}
