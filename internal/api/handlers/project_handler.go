package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/pkg/response"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Create a project
// @Description The caller becomes the writer and must not appear in members.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body project.CreateProjectDTO true "Project"
// @Success 201 {object} response.UUIDResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var in project.CreateProjectDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := h.svc.CreateProject(c.Request.Context(), caller, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.UUIDResponse{UUID: p.UUID})
}

// GetProject godoc
// @Summary Get a project with its derived status
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Success 200 {object} project.ProjectView
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetProject(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ModifyProject godoc
// @Summary Update a project
// @Description A members list replaces the whole membership.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param body body project.UpdateProjectDTO true "Changes"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /projects/{uuid} [patch]
func (h *ProjectHandler) ModifyProject(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var in project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.ModifyProject(c.Request.Context(), caller, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "project updated"})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Security BearerAuth
// @Param uuid path string true "Project UUID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{uuid} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmProject godoc
// @Summary Accept or reject a submitted plan or report
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param uuid path string true "Project UUID"
// @Param type query string true "plan or report"
// @Param value query bool true "accept"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{uuid}/confirm [patch]
func (h *ProjectHandler) ConfirmProject(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	var q project.ConfirmDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.ConfirmProject(c.Request.Context(), caller, id, q.Type, *q.Value); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: string(q.Type) + " confirmed"})
}
