package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todos-service/internal/app/fanout"
)

// taskOutcome is one row of task complete|delete output.
type taskOutcome struct {
	TaskID string `json:"task_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type taskBatchOutput struct {
	Results []taskOutcome `json:"results"`
	Failed  int           `json:"failed"`
}

// applyToTasks runs op for every id with at most rt.workers requests in
// flight. One id behaves like a plain call: no output, the error returned
// as is. Several ids print one outcome per id in argument order, every id is
// attempted, and the failures come back joined.
func applyToTasks(cmd *cobra.Command, rt *runtime, verb string, ids []string, op func(context.Context, string) error) error {
	if len(ids) == 1 {
		return op(cmd.Context(), ids[0])
	}

	results := fanout.Run(cmd.Context(), rt.workers, ids, func(ctx context.Context, id string) (struct{}, error) {
		return struct{}{}, op(ctx, id)
	})

	out := taskBatchOutput{Results: make([]taskOutcome, len(ids))}
	var errs []error
	for i, r := range results {
		out.Results[i] = taskOutcome{TaskID: ids[i], OK: r.Err == nil}
		if r.Err != nil {
			out.Results[i].Error = r.Err.Error()
			errs = append(errs, r.Err)
		}
	}
	out.Failed = len(errs)

	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}

	rt.logger.WarnContext(cmd.Context(), "batch finished with failures",
		slog.String("verb", verb),
		slog.Int("failed", len(errs)),
		slog.Int("total", len(ids)),
	)
	return fmt.Errorf("%s: %d of %d tasks failed: %w", verb, len(errs), len(ids), errors.Join(errs...))
}
