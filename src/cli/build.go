package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nimbus/src/build"
	"nimbus/src/logging"
)

// newBuildCmd runs the configured build engine. It does not depend on init
// having run.
func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "build",
		Aliases: []string{"b"},
		Short:   "Build the project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ForComponent(a.logger, "build")
			log.Debug("running build engine", "engine", fmt.Sprintf("%T", a.engine))
			if err := build.Run(a.engine, build.Request{}); err != nil {
				return err
			}
			log.Info("build finished")
			return nil
		},
	}
}
