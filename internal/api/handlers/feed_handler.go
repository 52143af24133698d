package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
)

type FeedHandler struct {
	svc *application.FeedService
}

func NewFeedHandler(svc *application.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Feed godoc
// @Summary List finished projects
// @Tags feed
// @Produce json
// @Param order query string true "recently or popularity"
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.FeedPage
// @Failure 422 {object} response.ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) Feed(c *gin.Context) {
	var q project.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.svc.Feed(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Search godoc
// @Summary Search finished projects
// @Description Without search_by both fields are searched and returned keyed by field.
// @Tags feed
// @Produce json
// @Param keyword query string true "Keyword"
// @Param search_by query string false "projectName or memberName"
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.SearchResult
// @Failure 422 {object} response.ErrorResponse
// @Router /feed/search [get]
func (h *FeedHandler) Search(c *gin.Context) {
	var q project.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	if q.SearchBy == "" {
		result, err := h.svc.SearchAll(c.Request.Context(), q.Keyword, q.Page, q.Limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	page, err := h.svc.Search(c.Request.Context(), q.SearchBy, q.Keyword, q.Page, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.SearchResult{q.SearchBy: *page})
}

// Pending godoc
// @Summary List projects awaiting review
// @Description Admins see every project, other callers only their own.
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param page query int true "Page, from 1"
// @Param limit query int true "Page size"
// @Success 200 {object} project.PendingPage
// @Router /feed/pending [get]
func (h *FeedHandler) Pending(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var q project.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.svc.Pending(c.Request.Context(), caller, q.Page, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
