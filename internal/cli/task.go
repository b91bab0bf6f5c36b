package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
)

func newTaskCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskCreateCommand(rt),
		newTaskListCommand(rt),
		newTaskGetCommand(rt),
		newTaskCompleteCommand(rt),
		newTaskDeleteCommand(rt),
	)
	return cmd
}

func newTaskCreateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "create <story-id> <name>",
		Short: "Add a task to a story",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := rt.svc.CreateTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToTaskResponse(created))
		},
	}
}

func newTaskListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list <story-id>",
		Short: "List a story's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := rt.svc.GetTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToTaskListResponse(tasks))
		},
	}
}

func newTaskGetCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <task-id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := rt.svc.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToTaskResponse(t))
		},
	}
}

func newTaskCompleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>...",
		Short: "Mark one or more tasks complete",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyToTasks(cmd, rt, "complete", args, rt.svc.CompleteTask)
		},
	}
}

func newTaskDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>...",
		Short: "Delete one or more tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyToTasks(cmd, rt, "delete", args, rt.svc.DeleteTask)
		},
	}
}
