// Package http provides the inbound HTTP adapter for the todos API: routing,
// middleware wiring and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all todos API routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	storyHandler *handlers.StoryHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	storyPath := "/stories/{" + handlers.ParamStoryID + "}"
	taskPath := "/tasks/{" + handlers.ParamTaskID + "}"

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/stories", storyHandler.CreateStory)
		r.Get("/stories", storyHandler.ListStories)
		r.Delete(storyPath, storyHandler.DeleteStory)

		// Tasks nested under their story.
		r.Post(storyPath+"/tasks", storyHandler.CreateTask)
		r.Get(storyPath+"/tasks", storyHandler.ListTasks)

		r.Get(taskPath, taskHandler.GetTask)
		r.Delete(taskPath, taskHandler.DeleteTask)
		r.Post(taskPath+"/complete", taskHandler.CompleteTask)
	})

	return r
}
