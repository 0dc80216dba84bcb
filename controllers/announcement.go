// controllers/announcement.go
package controllers

import (
	"net/http"

	"dorm-management-api/models"
	"dorm-management-api/services"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	announcements *services.AnnouncementService
}

func NewAnnouncementController(announcements *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcements: announcements}
}

// GetAnnouncements returns all announcements, newest first.
func (ctl *AnnouncementController) GetAnnouncements(c *gin.Context) {
	list, err := ctl.announcements.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
}

func (ctl *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var req models.AnnouncementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := ctl.announcements.Create(c.Request.Context(), req, currentUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": a})
}

func (ctl *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	var req models.AnnouncementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := ctl.announcements.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
}

func (ctl *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	if err := ctl.announcements.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Announcement deleted"})
}
