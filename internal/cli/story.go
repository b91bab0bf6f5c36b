package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/app/fanout"
	"github.com/jsamuelsen11/todos-service/internal/domain/story"
)

// storyWithTasks is the output row of story list --with-tasks.
type storyWithTasks struct {
	dto.StoryResponse
	Tasks []dto.TaskResponse `json:"tasks"`
}

func newStoryCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Manage stories",
	}
	cmd.AddCommand(
		newStoryCreateCommand(rt),
		newStoryListCommand(rt),
		newStoryDeleteCommand(rt),
	)
	return cmd
}

func newStoryCreateCommand(rt *runtime) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := rt.svc.CreateStory(cmd.Context(), args[0], owner)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToStoryResponse(created))
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "story owner")
	return cmd
}

func newStoryListCommand(rt *runtime) *cobra.Command {
	var (
		owner     string
		withTasks bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			stories, err := rt.svc.GetStories(ctx, owner)
			if err != nil {
				return err
			}
			if !withTasks {
				return printJSON(cmd.OutOrStdout(), dto.ToStoryListResponse(stories))
			}

			rows, err := fanout.Collect(ctx, rt.workers, stories, func(ctx context.Context, s story.Story) (storyWithTasks, error) {
				tasks, err := rt.svc.GetTasks(ctx, s.ID.String())
				if err != nil {
					return storyWithTasks{}, err
				}
				return storyWithTasks{
					StoryResponse: dto.ToStoryResponse(&s),
					Tasks:         dto.ToTaskListResponse(tasks).Tasks,
				}, nil
			})
			if err != nil {
				return err
			}

			rt.logger.DebugContext(ctx, "listed stories with tasks",
				slog.String("owner", owner),
				slog.Int("stories", len(rows)),
				slog.Int("workers", rt.workers),
			)
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "story owner")
	cmd.Flags().BoolVar(&withTasks, "with-tasks", false, "fetch each story's tasks concurrently")
	return cmd
}

func newStoryDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <story-id>",
		Short: "Delete a story and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.svc.DeleteStory(cmd.Context(), args[0])
		},
	}
}
