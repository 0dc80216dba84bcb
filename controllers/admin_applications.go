package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dorm-management-api/services"
	"dorm-management-api/workflow"

	"github.com/gin-gonic/gin"
)

// BulkActionRequest selects applications for a bulk review action.
type BulkActionRequest struct {
	IDs      []string `json:"ids" binding:"required"`
	Note     string   `json:"note"`
	Reason   string   `json:"reason"`
	Building string   `json:"building"`
}

// StatusActionRequest applies one named action to one application.
type StatusActionRequest struct {
	Action   string `json:"action" binding:"required"`
	Note     string `json:"note"`
	Building string `json:"building"`
}

// AdminApplicationController is the staff review surface.
type AdminApplicationController struct {
	dorm   *services.DormService
	export *services.ExportService
}

func NewAdminApplicationController(dorm *services.DormService, export *services.ExportService) *AdminApplicationController {
	return &AdminApplicationController{dorm: dorm, export: export}
}

func bindCriteria(c *gin.Context) (workflow.Criteria, bool) {
	var in workflow.CriteriaInput
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return workflow.Criteria{}, false
	}
	criteria, err := workflow.ParseCriteria(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return workflow.Criteria{}, false
	}
	return criteria, true
}

// ListApplications returns the filtered, sorted application table.
func (ctl *AdminApplicationController) ListApplications(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	apps, err := ctl.dorm.ListApplications(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    apps,
		"count":   len(apps),
	})
}

func (ctl *AdminApplicationController) GetApplication(c *gin.Context) {
	app, err := ctl.dorm.Application(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

func (ctl *AdminApplicationController) bulk(c *gin.Context, run func(req BulkActionRequest) (*services.BulkResult, error)) {
	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := run(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res, "message": res.Message})
}

func (ctl *AdminApplicationController) BulkApprove(c *gin.Context) {
	ctl.bulk(c, func(req BulkActionRequest) (*services.BulkResult, error) {
		return ctl.dorm.BulkApprove(c.Request.Context(), req.IDs, req.Note)
	})
}

func (ctl *AdminApplicationController) BulkDecline(c *gin.Context) {
	ctl.bulk(c, func(req BulkActionRequest) (*services.BulkResult, error) {
		return ctl.dorm.BulkDecline(c.Request.Context(), req.IDs, req.Note)
	})
}

func (ctl *AdminApplicationController) BulkResubmit(c *gin.Context) {
	ctl.bulk(c, func(req BulkActionRequest) (*services.BulkResult, error) {
		reason := req.Reason
		if reason == "" {
			reason = req.Note
		}
		return ctl.dorm.BulkRequestResubmit(c.Request.Context(), req.IDs, reason, currentUsername(c))
	})
}

func (ctl *AdminApplicationController) BulkAssign(c *gin.Context) {
	ctl.bulk(c, func(req BulkActionRequest) (*services.BulkResult, error) {
		return ctl.dorm.BulkAssign(c.Request.Context(), req.IDs, req.Building)
	})
}

// ChangeStatus applies a single review action by name.
func (ctl *AdminApplicationController) ChangeStatus(c *gin.Context) {
	var req StatusActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action, ok := workflow.ParseAction(req.Action)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown action %q", req.Action)})
		return
	}

	app, err := ctl.dorm.ApplyAction(c.Request.Context(), c.Param("id"), action, req.Note, req.Building)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

func (ctl *AdminApplicationController) DeleteApplication(c *gin.Context) {
	if err := ctl.dorm.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application deleted"})
}

// Export downloads the filtered table as CSV (default) or XLSX.
func (ctl *AdminApplicationController) Export(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	apps, err := ctl.dorm.ListApplications(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	stamp := time.Now().Format("20060102")
	switch strings.ToLower(c.DefaultQuery("format", "csv")) {
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="applications_export_%s.csv"`, stamp))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := ctl.export.WriteCSV(c.Writer, apps); err != nil {
			c.Error(err)
		}
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="applications_export_%s.xlsx"`, stamp))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := ctl.export.WriteXLSX(c.Writer, apps); err != nil {
			c.Error(err)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}
