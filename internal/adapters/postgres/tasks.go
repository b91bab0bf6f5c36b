package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

const (
	getTaskSQL          = `SELECT id, story_id, name, status FROM tasks WHERE id = $1 AND deleted_at IS NULL`
	insertTaskSQL       = `INSERT INTO tasks (story_id, name) VALUES ($1, $2) RETURNING id, story_id, name, status`
	selectTasksSQL      = `SELECT id, story_id, name, status FROM tasks WHERE story_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`
	updateTaskStatusSQL = `UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	deleteTaskSQL       = `UPDATE tasks SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
)

// GetTask returns an active task. A missing or soft-deleted task is reported
// as domain.ErrNotFound.
func (s *Store) GetTask(ctx context.Context, taskID uuid.UUID) (*task.Task, error) {
	s.logger.DebugContext(ctx, "get task", slog.String("task_id", taskID.String()))

	return guard(ctx, s, "GetTask", func(ctx context.Context) (*task.Task, error) {
		t, err := scanTask(s.db.QueryRow(ctx, getTaskSQL, taskID))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("task not found: %s: %w", taskID, domain.ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		return &t, nil
	})
}

// InsertTask inserts a task under storyID. The status column defaults to
// incomplete.
func (s *Store) InsertTask(ctx context.Context, storyID uuid.UUID, name string) (*task.Task, error) {
	s.logger.DebugContext(ctx, "insert task", slog.String("story_id", storyID.String()))

	return guard(ctx, s, "InsertTask", func(ctx context.Context) (*task.Task, error) {
		t, err := scanTask(s.db.QueryRow(ctx, insertTaskSQL, storyID, name))
		if err != nil {
			return nil, err
		}
		return &t, nil
	})
}

// SelectTasks returns the story's active tasks, oldest first.
func (s *Store) SelectTasks(ctx context.Context, storyID uuid.UUID) ([]task.Task, error) {
	s.logger.DebugContext(ctx, "select tasks", slog.String("story_id", storyID.String()))

	return guard(ctx, s, "SelectTasks", func(ctx context.Context) ([]task.Task, error) {
		rows, err := s.db.Query(ctx, selectTasksSQL, storyID)
		if err != nil {
			return nil, err
		}
		tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (task.Task, error) {
			return scanTask(row)
		})
		if err != nil {
			return nil, err
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		return tasks, nil
	})
}

// UpdateTaskStatus sets the status of an active task and returns the number
// of rows changed.
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status task.Status) (int64, error) {
	s.logger.DebugContext(ctx, "update task status",
		slog.String("task_id", taskID.String()),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return 0, domain.NewStoreError("UpdateTaskStatus", fmt.Errorf("invalid status: %s", status))
	}

	return guard(ctx, s, "UpdateTaskStatus", func(ctx context.Context) (int64, error) {
		tag, err := s.db.Exec(ctx, updateTaskStatusSQL, status.String(), taskID)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	})
}

// DeleteTask soft-deletes an active task and returns the number of rows
// changed.
func (s *Store) DeleteTask(ctx context.Context, taskID uuid.UUID) (int64, error) {
	s.logger.DebugContext(ctx, "delete task", slog.String("task_id", taskID.String()))

	return guard(ctx, s, "DeleteTask", func(ctx context.Context) (int64, error) {
		tag, err := s.db.Exec(ctx, deleteTaskSQL, taskID)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	})
}

// scanTask decodes one task row. The status column is stored as text; an
// unknown value is reported as errCorruptRow.
func scanTask(row pgx.Row) (task.Task, error) {
	var (
		t      task.Task
		status string
	)
	if err := row.Scan(&t.ID, &t.StoryID, &t.Name, &status); err != nil {
		return task.Task{}, err
	}

	parsed, err := task.ParseStatus(status)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: task %s: %w", errCorruptRow, t.ID, err)
	}
	t.Status = parsed
	return t, nil
}
