package http

import (
	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Category *handlers.CategoryHandler
	Task     *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, authService ports.AuthService, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	v1 := api.Group("/v1")
	{
		v1.POST("/auth/register", h.Auth.Register)
		v1.POST("/auth/login", h.Auth.Login)
		v1.GET("/auth/test", h.Auth.Probe)
		v1.GET("/categories/test", h.Category.Probe)
		v1.GET("/tasks/test", h.Task.Probe)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/auth/profile", h.Auth.Profile)

		protected.POST("/categories", h.Category.CreateCategory)
		protected.GET("/categories", h.Category.ListCategories)
		protected.GET("/categories/stats", h.Category.GetCategoryStats)
		protected.GET("/categories/:id", h.Category.GetCategory)
		protected.PATCH("/categories/:id", h.Category.UpdateCategory)
		protected.DELETE("/categories/:id", h.Category.DeleteCategory)

		protected.POST("/tasks", h.Task.CreateTask)
		protected.GET("/tasks", h.Task.ListTasks)
		protected.GET("/tasks/stats", h.Task.GetTaskStats)
		protected.PUT("/tasks/bulk/update", h.Task.BulkUpdateTasks)
		protected.DELETE("/tasks/bulk/delete", h.Task.BulkDeleteTasks)
		protected.GET("/tasks/:id", h.Task.GetTask)
		protected.PUT("/tasks/:id", h.Task.UpdateTask)
		protected.DELETE("/tasks/:id", h.Task.DeleteTask)
		protected.POST("/tasks/:id/notes", h.Task.AddNote)
		protected.DELETE("/tasks/:id/notes/:noteId", h.Task.RemoveNote)
	}
}
