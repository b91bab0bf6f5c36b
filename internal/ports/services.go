package ports

import (
	"context"

	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

// TodoService is the single call surface for story and task operations.
// Identifier arguments are raw caller strings; implementations validate them.
//
// Every method fails with an error matching exactly one of domain.ErrValidation,
// domain.ErrNotFound or domain.ErrInternal.
type TodoService interface {
	// CreateStory creates a story after trimming and checking name and owner.
	CreateStory(ctx context.Context, name, owner string) (*story.Story, error)

	// GetStories returns the owner's active stories in creation order.
	GetStories(ctx context.Context, owner string) ([]story.Story, error)

	// DeleteStory soft-deletes a story together with its active tasks.
	// Returns domain.ErrNotFound if nothing was deleted.
	DeleteStory(ctx context.Context, storyID string) error

	// CreateTask adds an incomplete task to a story.
	CreateTask(ctx context.Context, storyID, name string) (*task.Task, error)

	// GetTask returns one active task.
	// Returns domain.ErrNotFound if the task is missing or deleted.
	GetTask(ctx context.Context, taskID string) (*task.Task, error)

	// GetTasks returns the story's active tasks in creation order.
	GetTasks(ctx context.Context, storyID string) ([]task.Task, error)

	// CompleteTask marks a task complete. Re-completing succeeds.
	// Returns domain.ErrNotFound if the task is missing or deleted.
	CompleteTask(ctx context.Context, taskID string) error

	// DeleteTask soft-deletes a task.
	// Returns domain.ErrNotFound if nothing was deleted.
	DeleteTask(ctx context.Context, taskID string) error
}
