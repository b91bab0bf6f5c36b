// Package cli implements todoctl, a command-line client for the todos API.
// Commands talk to a ports.TodoService supplied by a ServiceFactory, so the
// same tree runs against the HTTP client in production and a mock in tests.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/platform/logging"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// Exit codes reported by ExitCode.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
)

const (
	envAddr        = "TODOS_ADDR"
	defaultWorkers = 4
)

// ServiceFactory builds the service the commands call. addr is the --addr
// flag value and may be empty, in which case the factory picks its default.
type ServiceFactory func(addr string, logger *slog.Logger) (ports.TodoService, error)

// runtime holds state shared by every command once flags are parsed.
type runtime struct {
	svc     ports.TodoService
	logger  *slog.Logger
	workers int
}

// NewRootCommand builds the todoctl command tree.
func NewRootCommand(newService ServiceFactory) *cobra.Command {
	rt := &runtime{}

	var (
		addr     string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "Manage stories and tasks in the todos service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rt.logger = logging.Component(logging.New(logLevel, "text", cmd.ErrOrStderr()), "todoctl")

			svc, err := newService(addr, rt.logger)
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}
			rt.svc = svc
			return nil
		},
	}

	root.PersistentFlags().StringVar(&addr, "addr", os.Getenv(envAddr),
		"todos API base URL (env "+envAddr+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().IntVar(&rt.workers, "workers", defaultWorkers, "concurrent requests for fan-out commands")

	root.AddCommand(newStoryCommand(rt), newTaskCommand(rt))
	return root
}

// ExitCode maps an error returned by the command tree to a process exit code.
// For a batch with mixed failures, validation wins over not found.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrValidation):
		return ExitValidation
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
