package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "slotgrid",
		Short:         "slotgrid: assign conference sessions to a room/slot grid",
		Long:          "slotgrid schedules conference sessions onto a fixed grid of rooms and time slots, honoring track, chair, and declared conflicts in priority order and relaxing them predictably when no feasible assignment exists.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&app.projectPath, "project", "", "Path to the project TOML file (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newScheduleCmd(app),
		newGridCmd(app),
		newSessionsCmd(app),
	)

	return rootCmd
}
