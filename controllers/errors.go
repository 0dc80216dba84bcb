package controllers

import (
	"errors"
	"log"
	"net/http"

	"dorm-management-api/repositories"
	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	var derr *repositories.DataAccessError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, services.ErrNothingSelected),
		errors.Is(err, services.ErrNoteRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, services.ErrCannotRemoveOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrStudentIDTaken),
		errors.Is(err, services.ErrNotReadyForAssignment),
		errors.Is(err, services.ErrPhaseOneLocked),
		errors.Is(err, services.ErrPhaseTwoClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &derr):
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), derr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": derr.UserMessage()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func currentUsername(c *gin.Context) string {
	return c.GetString("username")
}
