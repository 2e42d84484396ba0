package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions with placement status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, _, err := app.wire(nil)
			if err != nil {
				return err
			}

			project, err := service.LoadProject(cmd.Context())
			if err != nil {
				return err
			}

			for _, session := range project.Sessions {
				placement := "-"
				if session.Placed() {
					placement = fmt.Sprintf("%s/%s", *session.Room, *session.Slot)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					session.ID, session.Title, strings.Join(session.Tracks, ","), placement)
			}

			return nil
		},
	}
}
