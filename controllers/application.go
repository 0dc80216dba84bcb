package controllers

import (
	"net/http"

	"dorm-management-api/models"
	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

// StudentApplicationController serves a student's own application.
type StudentApplicationController struct {
	dorm *services.DormService
}

func NewStudentApplicationController(dorm *services.DormService) *StudentApplicationController {
	return &StudentApplicationController{dorm: dorm}
}

func (ctl *StudentApplicationController) currentStudent(c *gin.Context) (*models.Student, bool) {
	student, err := ctl.dorm.StudentByUsername(c.Request.Context(), currentUsername(c))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return student, true
}

// GetApplication returns the student's profile and application, if any.
func (ctl *StudentApplicationController) GetApplication(c *gin.Context) {
	student, ok := ctl.currentStudent(c)
	if !ok {
		return
	}
	app, err := ctl.dorm.ApplicationForStudent(c.Request.Context(), student)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"student":     student,
		"application": app,
	})
}

// SubmitPhaseOne accepts the Phase One form while it is still editable.
func (ctl *StudentApplicationController) SubmitPhaseOne(c *gin.Context) {
	var req services.PhaseOneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, ok := ctl.currentStudent(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	existing, err := ctl.dorm.ApplicationForStudent(ctx, student)
	if err != nil {
		respondError(c, err)
		return
	}
	if !services.CanEditPhaseOne(existing) {
		respondError(c, services.ErrPhaseOneLocked)
		return
	}

	app, err := ctl.dorm.SubmitPhaseOne(ctx, student, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Phase 1 submitted",
		"application": app,
	})
}

// SubmitPhaseTwo accepts the Phase Two form once Phase One is approved.
func (ctl *StudentApplicationController) SubmitPhaseTwo(c *gin.Context) {
	var req services.PhaseTwoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, ok := ctl.currentStudent(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	open, err := ctl.dorm.CanFillPhaseTwo(ctx, student)
	if err != nil {
		respondError(c, err)
		return
	}
	if !open {
		respondError(c, services.ErrPhaseTwoClosed)
		return
	}

	app, err := ctl.dorm.SubmitPhaseTwo(ctx, student, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Phase 2 submitted",
		"application": app,
	})
}

// Eligibility tells the client which steps are open.
func (ctl *StudentApplicationController) Eligibility(c *gin.Context) {
	student, ok := ctl.currentStudent(c)
	if !ok {
		return
	}
	app, err := ctl.dorm.ApplicationForStudent(c.Request.Context(), student)
	if err != nil {
		respondError(c, err)
		return
	}

	gate := ctl.dorm.Gate()
	resp := gin.H{
		"success":                 true,
		"can_edit_phase_one":      services.CanEditPhaseOne(app),
		"can_fill_phase_two":      gate.CanFillPhaseTwo(app),
		"is_ready_for_assignment": gate.IsReadyForAssignment(app),
		"status":                  nil,
		"admin_note":              "",
	}
	if app != nil {
		resp["status"] = app.Status
		resp["admin_note"] = app.AdminNote
	}
	c.JSON(http.StatusOK, resp)
}
