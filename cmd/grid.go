package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	rendergrid "github.com/confsched/slotgrid/internal/adapters/render/grid"
	"github.com/confsched/slotgrid/internal/schedule"
)

func newGridCmd(app *app) *cobra.Command {
	var (
		view     string
		htmlPath string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the current assignments without scheduling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewKind, err := rendergrid.ParseView(view)
			if err != nil {
				return err
			}

			service, _, err := app.wire(nil)
			if err != nil {
				return err
			}

			project, err := service.LoadProject(cmd.Context())
			if err != nil {
				return err
			}

			out, err := rendergrid.Render(project, schedule.Report{}, rendergrid.RenderOptions{View: viewKind})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)

			if htmlPath != "" {
				return writeHTMLReport(htmlPath, project)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", string(rendergrid.ViewSlot), "Report view: slot, room, or session")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write an HTML grid report to this path")

	return cmd
}
