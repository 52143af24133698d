package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/project-review/docs"
	"github.com/linskybing/project-review/internal/api/handlers"
	"github.com/linskybing/project-review/internal/api/middleware"
	"github.com/linskybing/project-review/pkg/response"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"}) })

	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public feed
	r.GET("/feed", h.Feed.Feed)
	r.GET("/feed/search", h.Feed.Search)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", handlers.AuthStatusHandler)
		auth.GET("/feed/pending", h.Feed.Pending)
		auth.GET("/ws/projects/:uuid", h.Socket.ProjectSocket)

		profile := auth.Group("/profile")
		{
			profile.GET("/projects", h.Profile.Projects)
			profile.GET("/documents", h.Profile.Documents)
			profile.GET("/documents/:bucket", h.Profile.DocumentsIn)
		}

		projects := auth.Group("/projects")
		{
			projects.POST("", h.Project.CreateProject)
			projects.GET("/:uuid", h.Project.GetProject)
			projects.PATCH("/:uuid", h.Project.ModifyProject)
			projects.DELETE("/:uuid", h.Project.DeleteProject)
			projects.PATCH("/:uuid/confirm", middleware.Admin(), h.Project.ConfirmProject)

			projects.POST("/:uuid/plan", h.Plan.CreatePlan)
			projects.GET("/:uuid/plan", h.Plan.GetPlan)
			projects.PATCH("/:uuid/plan", h.Plan.ModifyPlan)
			projects.DELETE("/:uuid/plan", h.Plan.DeletePlan)
			projects.PATCH("/:uuid/plan/submit", h.Plan.SubmitPlan)

			projects.POST("/:uuid/report", h.Report.CreateReport)
			projects.GET("/:uuid/report", h.Report.GetReport)
			projects.PATCH("/:uuid/report", h.Report.ModifyReport)
			projects.DELETE("/:uuid/report", h.Report.DeleteReport)
			projects.PATCH("/:uuid/report/submit", h.Report.SubmitReport)
		}
	}
}
