package controllers

import (
	"net/http"

	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

type UpdateBuildingRequest struct {
	Building string `json:"building"`
}

type StudentController struct {
	dorm *services.DormService
}

func NewStudentController(dorm *services.DormService) *StudentController {
	return &StudentController{dorm: dorm}
}

// ListStudents lists students, optionally those in ?building=.
func (ctl *StudentController) ListStudents(c *gin.Context) {
	students, err := ctl.dorm.Students(c.Request.Context(), c.Query("building"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": students, "count": len(students)})
}

// LookupStudent finds a student by registration number (?student_id=UGR/1234/15).
func (ctl *StudentController) LookupStudent(c *gin.Context) {
	studentID := c.Query("student_id")
	if studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}
	student, err := ctl.dorm.StudentByStudentID(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	app, err := ctl.dorm.ApplicationForStudent(c.Request.Context(), student)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": student, "application": app})
}

// UpdateBuilding edits the building field of one student.
func (ctl *StudentController) UpdateBuilding(c *gin.Context) {
	var req UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := ctl.dorm.UpdateStudentBuilding(c.Request.Context(), c.Param("id"), req.Building)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": student})
}
