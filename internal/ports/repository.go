package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

// TodoRepository is the persistence port for stories and tasks. All reads see
// active rows only. Mutations report rows affected and leave the not-found
// decision to the caller. Store failures are returned as *domain.StoreError.
type TodoRepository interface {
	// InsertStory inserts a story and returns it with its generated ID.
	InsertStory(ctx context.Context, name, owner string) (*story.Story, error)

	// SelectStories returns the owner's active stories, oldest first.
	SelectStories(ctx context.Context, owner string) ([]story.Story, error)

	// GetTask returns one active task, or domain.ErrNotFound.
	GetTask(ctx context.Context, taskID uuid.UUID) (*task.Task, error)

	// InsertTask inserts a task; the store defaults its status to incomplete.
	InsertTask(ctx context.Context, storyID uuid.UUID, name string) (*task.Task, error)

	// SelectTasks returns the story's active tasks, oldest first.
	SelectTasks(ctx context.Context, storyID uuid.UUID) ([]task.Task, error)

	// UpdateTaskStatus sets the status of an active task.
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status task.Status) (int64, error)

	// DeleteStory soft-deletes the story's active tasks and then the story in
	// one transaction, returning the combined rows affected.
	DeleteStory(ctx context.Context, storyID uuid.UUID) (int64, error)

	// DeleteTask soft-deletes an active task.
	DeleteTask(ctx context.Context, taskID uuid.UUID) (int64, error)
}
