// Package main is the entry point for todoctl, the command-line client for
// the todos API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/adapters/clients/todos"
	"github.com/jsamuelsen11/todos-service/internal/cli"
	"github.com/jsamuelsen11/todos-service/internal/platform/config"
	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One correlation id ties together every request of this invocation.
	ctx = httpclient.WithCorrelationID(ctx, uuid.NewString())

	err := cli.NewRootCommand(newService).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	stop()
	os.Exit(cli.ExitCode(err))
}

// newService builds an HTTP-backed TodoService from APP_CLIENT_* settings,
// with addr overriding the base URL when set.
func newService(addr string, logger *slog.Logger) (ports.TodoService, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.BaseURL = addr
	}
	hc := httpclient.New(cfg, "todos-api",
		httpclient.WithLogger(logger),
		httpclient.WithUserAgent("todoctl"),
	)
	return todos.NewClient(hc), nil
}
