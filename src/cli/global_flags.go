package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"nimbus/src/logging"
	"nimbus/src/safety"
)

// addGlobalFlags adds persistent safety and logging flags to the root command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned actions without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
	cmd.PersistentFlags().Bool("force", false, "Overwrite an existing nimbus.toml without asking")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().String("log-format", "text", "Log format: text|json")
}

// getSafetyOptions reads global flags into a safety.Options struct.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	force, _ := cmd.Root().PersistentFlags().GetBool("force")
	return safety.Options{DryRun: dry, Yes: yes, Force: force}
}

// newLogger builds the invocation logger from the global flags. Logs go to
// the command's stderr so they never mix with rendered output.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelStr, _ := cmd.Root().PersistentFlags().GetString("log-level")
	format, _ := cmd.Root().PersistentFlags().GetString("log-format")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})
}
