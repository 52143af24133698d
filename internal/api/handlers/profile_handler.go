package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
)

type ProfileHandler struct {
	svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Projects godoc
// @Summary List a user's projects
// @Description Without user the caller's projects are listed. Another user's profile shows finished projects only.
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user query string false "User UUID"
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.ProfilePage
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /profile/projects [get]
func (h *ProfileHandler) Projects(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var q project.ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.svc.Projects(c.Request.Context(), caller, q.User, q.Page, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Documents godoc
// @Summary List the caller's documents by review outcome
// @Description Returns one page of each bucket: accepted, rejected, pending and writing.
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.ReviewSummary
// @Failure 422 {object} response.ErrorResponse
// @Router /profile/documents [get]
func (h *ProfileHandler) Documents(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var q project.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	summary, err := h.svc.Documents(c.Request.Context(), caller, q.Page, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DocumentsIn godoc
// @Summary List the caller's documents in one review bucket
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param bucket path string true "accepted, rejected, pending or writing"
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.ReviewPage
// @Failure 422 {object} response.ErrorResponse
// @Router /profile/documents/{bucket} [get]
func (h *ProfileHandler) DocumentsIn(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var q project.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.svc.DocumentsIn(c.Request.Context(), caller, project.ReviewBucket(c.Param("bucket")), q.Page, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
