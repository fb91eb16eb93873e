package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depaudit/internal/cli"
	deperrors "github.com/matzehuels/depaudit/pkg/errors"
	"github.com/matzehuels/depaudit/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code == 2 {
			fmt.Fprintln(os.Stderr, errorMessage(err))
		}
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	case errors.Is(err, cli.ErrIssuesFound):
		return 1
	}
	return 2
}

// errorMessage prefixes structured errors with their code, e.g.
// "error [INVALID_CONFIG]: registry.timeout must be positive".
func errorMessage(err error) string {
	if code := deperrors.GetCode(err); code != "" {
		return fmt.Sprintf("error [%s]: %s", code, deperrors.UserMessage(err))
	}
	return "error: " + err.Error()
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
			observability.SetHTTPHooks(httpLogger{c})
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
