package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/taskboard/api/handler"
	"github.com/fastygo/taskboard/internal/middleware"
)

type Handlers struct {
	User   *apiHandler.UserHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New registers every route and wraps the router with mws, first outermost.
func New(handlers Handlers, mws ...middleware.Middleware) fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.POST("/api/users", handlers.User.CreateUser)
	r.GET("/api/users", handlers.User.ListUsers)
	r.GET("/api/users/{id}", handlers.User.GetUser)
	r.DELETE("/api/users/{id}", handlers.User.DeleteUser)

	r.POST("/api/tasks", handlers.Task.CreateTask)
	r.GET("/api/tasks/user/{userId}", handlers.Task.ListTasksByUser)
	r.PATCH("/api/tasks/{id}", handlers.Task.UpdateTaskStatus)
	r.DELETE("/api/tasks/{id}", handlers.Task.DeleteTask)

	return middleware.Chain(r.Handler, mws...)
}
