package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/pkg/response"
)

type PlanHandler struct {
	svc *application.PlanService
}

func NewPlanHandler(svc *application.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// CreatePlan godoc
// @Summary Create the project plan
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param body body project.PlanDTO true "Plan"
// @Success 201 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/plan [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var in project.PlanDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.CreatePlan(c.Request.Context(), caller, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "plan created"})
}

// GetPlan godoc
// @Summary Get the project plan
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Success 200 {object} project.PlanView
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid}/plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetPlan(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ModifyPlan godoc
// @Summary Edit a draft or rejected plan
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param body body project.PlanDTO true "Plan"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/plan [patch]
func (h *PlanHandler) ModifyPlan(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var in project.PlanDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.ModifyPlan(c.Request.Context(), caller, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "plan updated"})
}

// DeletePlan godoc
// @Summary Delete the project plan
// @Tags plans
// @Security BearerAuth
// @Param uuid path string true "Project UUID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid}/plan [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePlan(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitPlan godoc
// @Summary Submit the plan for review
// @Tags plans
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/plan/submit [patch]
func (h *PlanHandler) SubmitPlan(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	if err := h.svc.SubmitPlan(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "plan submitted"})
}
