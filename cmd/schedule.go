package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rendergrid "github.com/confsched/slotgrid/internal/adapters/render/grid"
	"github.com/confsched/slotgrid/internal/application"
	"github.com/confsched/slotgrid/internal/domain"
)

func newScheduleCmd(app *app) *cobra.Command {
	var (
		preserve string
		except   string
		seed     string
		view     string
		htmlPath string
		apply    bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the assignment pass and print the resulting grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Directive parsing happens before any scheduling work so
			// malformed arguments stay pure usage errors.
			preserveSet, err := domain.ParsePreserve(preserve)
			if err != nil {
				return err
			}
			if except != "" {
				ids, err := domain.ParseSessionIDs(except)
				if err != nil {
					return fmt.Errorf("parse except directive: %w", err)
				}
				preserveSet.Except = ids
			}
			if err := preserveSet.Validate(); err != nil {
				return err
			}
			viewKind, err := rendergrid.ParseView(view)
			if err != nil {
				return err
			}

			logger := newLogger(verbose)
			defer func() { _ = logger.Sync() }()

			service, cfg, err := app.wire(logger)
			if err != nil {
				return err
			}

			runSeed := seed
			if runSeed == "" {
				runSeed = cfg.GetString(defaultSeedKey)
			}

			result, err := service.Run(cmd.Context(), application.RunOptions{
				Preserve:        preserveSet,
				Seed:            runSeed,
				DefaultCapacity: cfg.GetInt(defaultCapacityKey),
			})
			if err != nil {
				return err
			}

			if runSeed == "" {
				// Echo the generated seed so the run can be reproduced.
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "generated seed: %s\n", result.Report.Seed)
			}

			for _, skipped := range result.Skipped {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped by validation: session %d\n", skipped.SessionID)
				for _, f := range skipped.Findings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  %s/%s: %s\n", f.Severity, f.Type, f.Message)
				}
			}

			out, err := rendergrid.Render(result.Project, result.Report, rendergrid.RenderOptions{
				View: viewKind,
				Seed: result.Report.Seed,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)

			if htmlPath != "" {
				if err := writeHTMLReport(htmlPath, result.Project); err != nil {
					return err
				}
			}

			if !apply {
				return nil
			}

			var applyResult application.ApplyResult
			err = runApplySpinner(cmd.Context(), cmd.ErrOrStderr(), "Applying assignments...", func() error {
				var applyErr error
				applyResult, applyErr = service.Apply(cmd.Context(), result.Project)
				return applyErr
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "applied %d assignment(s)\n", applyResult.Applied)
			for _, failure := range applyResult.Failures {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "apply failed for session %d: %v\n", failure.SessionID, failure.Err)
			}
			if len(applyResult.Failures) > 0 {
				return fmt.Errorf("%d assignment write(s) failed", len(applyResult.Failures))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&preserve, "preserve", "none", "Assignments to preserve: none, all, or a session id list")
	cmd.Flags().StringVar(&except, "except", "", "Session ids excluded from preservation (with --preserve all)")
	cmd.Flags().StringVar(&seed, "seed", "", "Shuffle seed; omit to generate one")
	cmd.Flags().StringVar(&view, "view", string(rendergrid.ViewSlot), "Report view: slot, room, or session")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write an HTML grid report to this path")
	cmd.Flags().BoolVar(&apply, "apply", false, "Write assignments back to the project data")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every relaxation step")

	return cmd
}

func writeHTMLReport(path string, project domain.Project) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := rendergrid.WriteHTML(file, project); err != nil {
		return err
	}
	return file.Close()
}
