package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nimbus/src/logging"
	"nimbus/src/manifest"
	"nimbus/src/project"
	"nimbus/src/safety"
)

func newInitCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "init [project_name]",
		Aliases: []string{"i"},
		Short:   "Initialize a new project",
		Long: `Initialize a new project.

With a project name, creates <project_name>/ with include/, src/ and
nimbus.toml inside it. Without one, scaffolds the current directory and
names the project after it. Re-running init over an existing project is
safe; an existing nimbus.toml is only replaced after confirmation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(output); err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			opts := getSafetyOptions(cmd)
			log := logging.ForComponent(a.logger, "init")
			in := &project.Initializer{Logger: log}

			plan, err := in.Plan(name)
			if err != nil {
				return err
			}
			log.Debug("planned init", "name", plan.ProjectName, "root", plan.Root, "dry_run", opts.DryRun)
			if opts.DryRun {
				return render(cmd.OutOrStdout(), output, plan, func(w io.Writer) error {
					return renderPlanText(w, plan)
				})
			}

			if plan.ManifestExists {
				detail := ""
				if existing, err := manifest.Load(plan.Manifest); err == nil {
					detail = fmt.Sprintf("project %q", existing.ProjectName())
				} else {
					log.Warn("existing manifest is not valid", "path", plan.Manifest, "err", err)
				}
				ok, err := safety.ConfirmOverwrite(opts, cmd.InOrStdin(), cmd.ErrOrStderr(), plan.Manifest, detail)
				if err != nil {
					return err
				}
				plan.KeepManifest = !ok
			}

			res, err := in.Apply(plan)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, res, func(w io.Writer) error {
				return renderResultText(w, res)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text|json|yaml")
	return cmd
}

func renderPlanText(w io.Writer, p project.Plan) error {
	fmt.Fprintf(w, "Would initialize project %q in %s\n", p.ProjectName, p.Root)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range p.Directories {
		fmt.Fprintf(tw, "  mkdir\t%s\n", d)
	}
	action := "write"
	if p.ManifestExists {
		action = "overwrite"
	}
	fmt.Fprintf(tw, "  %s\t%s\n", action, p.Manifest)
	return tw.Flush()
}

func renderResultText(w io.Writer, r *project.Result) error {
	fmt.Fprintf(w, "Initialized project %q in %s\n", r.ProjectName, r.Root)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range r.Created {
		fmt.Fprintf(tw, "  created\t%s\n", d)
	}
	for _, d := range r.Existing {
		fmt.Fprintf(tw, "  exists\t%s\n", d)
	}
	if r.ManifestWritten {
		fmt.Fprintf(tw, "  wrote\t%s\n", r.Manifest)
	} else {
		fmt.Fprintf(tw, "  kept\t%s\n", r.Manifest)
	}
	return tw.Flush()
}
