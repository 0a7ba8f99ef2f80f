package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nimbus/src/build"
	"nimbus/src/logging"
)

// app holds per-invocation state shared by the subcommands.
type app struct {
	engine build.Engine
	logger *slog.Logger
}

// Option customizes the root command.
type Option func(*app)

// WithBuildEngine sets the engine the build command runs. The default is
// build.Noop.
func WithBuildEngine(e build.Engine) Option {
	return func(a *app) { a.engine = e }
}

// NewRootCmd returns the root cobra command for the nimbus CLI.
func NewRootCmd(stdout, stderr io.Writer, opts ...Option) *cobra.Command {
	a := &app{engine: build.Noop{}, logger: logging.Discard()}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:           "nimbus",
		Short:         "nimbus - C++ build system and package manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newBuildCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
