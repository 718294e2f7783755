package http

import (
	"github.com/jongwon/todo-app/internal/adapter/http/handlers"
	"github.com/jongwon/todo-app/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Projects *handlers.ProjectHandler
	Tasks    *handlers.TaskHandler
}

// RegisterRoutes mounts the API under /api. Everything except health checks
// and login/logout requires a session; sessionAuth is usually
// middleware.SessionAuth.
func RegisterRoutes(r *gin.Engine, h Handlers, sessionAuth gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}

	authed := api.Group("")
	authed.Use(sessionAuth)
	{
		authed.GET("/auth/me", h.Auth.Me)

		authed.GET("/projects", h.Projects.ListProjects)
		authed.POST("/projects", h.Projects.CreateProject)
		authed.GET("/projects/:id", h.Projects.GetProject)
		authed.PUT("/projects/:id", h.Projects.UpdateProject)
		authed.PATCH("/projects/:id", h.Projects.UpdateProject)
		authed.DELETE("/projects/:id", h.Projects.DeleteProject)

		authed.GET("/tasks", h.Tasks.ListTasks)
		authed.POST("/tasks", h.Tasks.CreateTask)
		authed.GET("/tasks/:id", h.Tasks.GetTask)
		authed.PUT("/tasks/:id", h.Tasks.UpdateTask)
		authed.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		authed.DELETE("/tasks/:id", h.Tasks.DeleteTask)
	}
}
