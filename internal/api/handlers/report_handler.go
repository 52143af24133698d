package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/pkg/response"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// CreateReport godoc
// @Summary Create the project report
// @Description Refused with 409 while the plan is not accepted, unless that policy is disabled.
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param body body project.ReportDTO true "Report"
// @Success 201 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/report [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var in project.ReportDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.CreateReport(c.Request.Context(), caller, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "report created"})
}

// GetReport godoc
// @Summary Get the project report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Success 200 {object} project.ReportView
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid}/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetReport(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ModifyReport godoc
// @Summary Edit a draft or rejected report
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param body body project.ReportDTO true "Report"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/report [patch]
func (h *ReportHandler) ModifyReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var in project.ReportDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.ModifyReport(c.Request.Context(), caller, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report updated"})
}

// DeleteReport godoc
// @Summary Delete the project report
// @Tags reports
// @Security BearerAuth
// @Param uuid path string true "Project UUID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid}/report [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteReport(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitReport godoc
// @Summary Submit the report for review
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/report/submit [patch]
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	if err := h.svc.SubmitReport(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report submitted"})
}
