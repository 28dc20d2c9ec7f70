package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/handlers"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Task       *handlers.TaskHandler
	Attachment *handlers.AttachmentHandler
	User       *handlers.UserHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/verify", h.Auth.Verify)
		}

		taches := api.Group("/taches")
		taches.Use(middleware.AuthRequired(authService))
		{
			taches.POST("", h.Task.Create)
			taches.GET("", h.Task.List)
			taches.GET("/terminees", h.Task.ListCompleted)
			taches.GET("/:id", h.Task.Get)
			taches.PUT("/:id", h.Task.Update)
			taches.DELETE("/:id", h.Task.Delete)
			taches.PATCH("/:id/termine", h.Task.MarkComplete)

			taches.POST("/:id/permissions", h.Task.AssignPermission)
			taches.GET("/:id/permissions", h.Task.ListPermissions)
			taches.DELETE("/:id/permissions/:userId", h.Task.RemovePermission)

			taches.POST("/:id/attachments", h.Attachment.Upload)
			taches.GET("/:id/attachments", h.Attachment.List)
			taches.DELETE("/attachments/:attachmentId", h.Attachment.Delete)

			taches.GET("/:id/history", h.Task.History)
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired(authService))
		{
			users.GET("", h.User.List)
		}
	}
}
