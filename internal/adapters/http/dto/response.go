// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
// The outbound todos client decodes the same types.
package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

// StoryResponse represents a single story in HTTP responses.
type StoryResponse struct {
	ID    string `json:"story_id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// StoryListResponse represents a list of stories in HTTP responses.
type StoryListResponse struct {
	Stories []StoryResponse `json:"stories"`
	Count   int             `json:"count"`
}

// TaskResponse represents a single task in HTTP responses. Complete mirrors
// Status for clients that only read the boolean.
type TaskResponse struct {
	ID       string `json:"task_id"`
	StoryID  string `json:"story_id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Complete bool   `json:"complete"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToStoryResponse converts a domain Story to an HTTP response DTO.
func ToStoryResponse(s *story.Story) StoryResponse {
	return StoryResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Owner: s.Owner,
	}
}

// ToStoryListResponse converts stories to an HTTP list response DTO.
func ToStoryListResponse(stories []story.Story) StoryListResponse {
	items := make([]StoryResponse, len(stories))
	for i := range stories {
		items[i] = ToStoryResponse(&stories[i])
	}
	return StoryListResponse{Stories: items, Count: len(items)}
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID.String(),
		StoryID:  t.StoryID.String(),
		Name:     t.Name,
		Status:   t.Status.String(),
		Complete: t.IsComplete(),
	}
}

// ToTaskListResponse converts tasks to an HTTP list response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// Story converts the DTO back to a domain Story.
func (r StoryResponse) Story() (story.Story, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return story.Story{}, fmt.Errorf("story_id %q: %w", r.ID, err)
	}
	return story.Story{ID: id, Name: r.Name, Owner: r.Owner}, nil
}

// Task converts the DTO back to a domain Task.
func (r TaskResponse) Task() (task.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("task_id %q: %w", r.ID, err)
	}
	storyID, err := uuid.Parse(r.StoryID)
	if err != nil {
		return task.Task{}, fmt.Errorf("story_id %q: %w", r.StoryID, err)
	}
	status, err := task.ParseStatus(r.Status)
	if err != nil {
		return task.Task{}, err
	}
	return task.Task{ID: id, StoryID: storyID, Name: r.Name, Status: status}, nil
}
