// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. It
// validates caller input and turns zero rows affected into domain.ErrNotFound.
// Repository errors are returned unchanged.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService over repo. A nil logger discards.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// CreateStory trims and checks name, then owner, then inserts the story. The
// first invalid argument is reported.
func (s *TodoService) CreateStory(ctx context.Context, name, owner string) (*story.Story, error) {
	name, err := domain.NonEmpty(name, "name")
	if err != nil {
		return nil, err
	}
	owner, err = domain.NonEmpty(owner, "owner")
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating story", slog.String("owner", owner))

	created, err := s.repo.InsertStory(ctx, name, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create story",
			slog.String("operation", "CreateStory"),
			slog.String("owner", owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// GetStories returns the owner's active stories in creation order.
func (s *TodoService) GetStories(ctx context.Context, owner string) ([]story.Story, error) {
	owner, err := domain.NonEmpty(owner, "owner")
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing stories", slog.String("owner", owner))

	stories, err := s.repo.SelectStories(ctx, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stories",
			slog.String("operation", "GetStories"),
			slog.String("owner", owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stories, nil
}

// DeleteStory soft-deletes a story and its active tasks.
func (s *TodoService) DeleteStory(ctx context.Context, storyID string) error {
	id, err := domain.ParseID(storyID, "story_id")
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting story", slog.String("story_id", id.String()))

	n, err := s.repo.DeleteStory(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete story",
			slog.String("operation", "DeleteStory"),
			slog.String("story_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	if n == 0 {
		return notFound("unable to delete story", id)
	}

	return nil
}

// CreateTask adds an incomplete task to a story. The story's existence is
// left to the store's foreign key.
func (s *TodoService) CreateTask(ctx context.Context, storyID, name string) (*task.Task, error) {
	id, err := domain.ParseID(storyID, "story_id")
	if err != nil {
		return nil, err
	}
	name, err = domain.NonEmpty(name, "name")
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating task", slog.String("story_id", id.String()))

	created, err := s.repo.InsertTask(ctx, id, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("story_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// GetTask returns one active task.
func (s *TodoService) GetTask(ctx context.Context, taskID string) (*task.Task, error) {
	id, err := domain.ParseID(taskID, "task_id")
	if err != nil {
		return nil, err
	}

	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// GetTasks returns the story's active tasks in creation order.
func (s *TodoService) GetTasks(ctx context.Context, storyID string) ([]task.Task, error) {
	id, err := domain.ParseID(storyID, "story_id")
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.SelectTasks(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "GetTasks"),
			slog.String("story_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// CompleteTask marks a task complete. Completing an already complete task
// succeeds; completing a deleted one does not.
func (s *TodoService) CompleteTask(ctx context.Context, taskID string) error {
	id, err := domain.ParseID(taskID, "task_id")
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "completing task", slog.String("task_id", id.String()))

	n, err := s.repo.UpdateTaskStatus(ctx, id, task.StatusComplete)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to complete task",
			slog.String("operation", "CompleteTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	if n == 0 {
		return notFound("unable to complete task", id)
	}

	return nil
}

// DeleteTask soft-deletes a task.
func (s *TodoService) DeleteTask(ctx context.Context, taskID string) error {
	id, err := domain.ParseID(taskID, "task_id")
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id.String()))

	n, err := s.repo.DeleteTask(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	if n == 0 {
		return notFound("unable to delete task", id)
	}

	return nil
}

func notFound(msg string, id uuid.UUID) error {
	return fmt.Errorf("%s: %s: %w", msg, id, domain.ErrNotFound)
}
