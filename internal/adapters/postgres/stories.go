package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/todos-service/internal/domain/story"
)

const (
	insertStorySQL   = `INSERT INTO stories (name, owner) VALUES ($1, $2) RETURNING id, name, owner`
	selectStoriesSQL = `SELECT id, name, owner FROM stories WHERE owner = $1 AND deleted_at IS NULL ORDER BY created_at ASC`

	deleteStoryTasksSQL = `UPDATE tasks SET deleted_at = now() WHERE story_id = $1 AND deleted_at IS NULL`
	deleteStorySQL      = `UPDATE stories SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
)

// InsertStory inserts a story and returns it with the generated ID.
func (s *Store) InsertStory(ctx context.Context, name, owner string) (*story.Story, error) {
	s.logger.DebugContext(ctx, "insert story", slog.String("owner", owner))

	return guard(ctx, s, "InsertStory", func(ctx context.Context) (*story.Story, error) {
		var st story.Story
		if err := s.db.QueryRow(ctx, insertStorySQL, name, owner).Scan(&st.ID, &st.Name, &st.Owner); err != nil {
			return nil, err
		}
		return &st, nil
	})
}

// SelectStories returns the owner's active stories, oldest first. An owner
// with no stories yields an empty, non-nil slice.
func (s *Store) SelectStories(ctx context.Context, owner string) ([]story.Story, error) {
	s.logger.DebugContext(ctx, "select stories", slog.String("owner", owner))

	return guard(ctx, s, "SelectStories", func(ctx context.Context) ([]story.Story, error) {
		rows, err := s.db.Query(ctx, selectStoriesSQL, owner)
		if err != nil {
			return nil, err
		}
		stories, err := pgx.CollectRows(rows, scanStory)
		if err != nil {
			return nil, err
		}
		if stories == nil {
			stories = []story.Story{}
		}
		return stories, nil
	})
}

// DeleteStory soft-deletes the story's active tasks and then the story in a
// single transaction. The result is the total number of rows stamped, so zero
// means the story was missing or already deleted. Any failure rolls back both
// updates.
func (s *Store) DeleteStory(ctx context.Context, storyID uuid.UUID) (int64, error) {
	s.logger.DebugContext(ctx, "delete story", slog.String("story_id", storyID.String()))

	return guard(ctx, s, "DeleteStory", func(ctx context.Context) (int64, error) {
		tx, err := s.db.Begin(ctx)
		if err != nil {
			return 0, fmt.Errorf("begin: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		tasksTag, err := tx.Exec(ctx, deleteStoryTasksSQL, storyID)
		if err != nil {
			return 0, fmt.Errorf("delete tasks: %w", err)
		}
		storyTag, err := tx.Exec(ctx, deleteStorySQL, storyID)
		if err != nil {
			return 0, fmt.Errorf("delete story: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("commit: %w", err)
		}
		return tasksTag.RowsAffected() + storyTag.RowsAffected(), nil
	})
}

func scanStory(row pgx.CollectableRow) (story.Story, error) {
	var st story.Story
	err := row.Scan(&st.ID, &st.Name, &st.Owner)
	return st, err
}
