package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// StoryHandler handles HTTP requests for stories and the tasks under them.
// Identifiers are passed through as raw strings; the service validates them.
type StoryHandler struct {
	svc ports.TodoService
}

// NewStoryHandler creates a new StoryHandler with the given service port.
func NewStoryHandler(svc ports.TodoService) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// CreateStory handles POST /api/v1/stories.
func (h *StoryHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateStory(r.Context(), req.Name, req.Owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStoryResponse(created))
}

// ListStories handles GET /api/v1/stories?owner=.
func (h *StoryHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.svc.GetStories(r.Context(), r.URL.Query().Get("owner"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStoryListResponse(stories))
}

// DeleteStory handles DELETE /api/v1/stories/{storyId}.
func (h *StoryHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteStory(r.Context(), chi.URLParam(r, ParamStoryID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTask handles POST /api/v1/stories/{storyId}/tasks.
func (h *StoryHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), chi.URLParam(r, ParamStoryID), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// ListTasks handles GET /api/v1/stories/{storyId}/tasks.
func (h *StoryHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.GetTasks(r.Context(), chi.URLParam(r, ParamStoryID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}
