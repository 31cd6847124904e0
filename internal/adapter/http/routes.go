package http

import (
	"github.com/gin-gonic/gin"

	"taskvault/internal/adapter/http/handlers"
	"taskvault/internal/adapter/http/middleware"
	"taskvault/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	authService ports.AuthService,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Every task route runs behind the auth middleware; handlers receive
		// only the resolved caller identity, never the raw token.
		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(authService))
		{
			tasks.POST("/create", taskHandler.CreateTask)
			tasks.GET("/all", taskHandler.ListTasks)
			tasks.GET("/single/:taskId", taskHandler.GetTask)
			tasks.PUT("/update/:taskId", taskHandler.UpdateTask)
			tasks.DELETE("/delete/:taskId", taskHandler.DeleteTask)
		}
	}
}
