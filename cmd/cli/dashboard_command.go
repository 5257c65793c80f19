package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the overview stats and recent appointments",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}

		overview, err := app.dashboard.GetOverview(app.ctx)
		if err != nil {
			return err
		}

		renderKeyValues([][2]string{
			{"Total patients", strconv.Itoa(overview.Stats.TotalPatients)},
			{"Today's appointments", strconv.Itoa(overview.Stats.TodaysAppointments)},
			{"Upcoming appointments", strconv.Itoa(overview.Stats.UpcomingAppointments)},
			{"Active medications", strconv.Itoa(overview.Stats.ActiveMedications)},
		})

		fmt.Println("\nRecent appointments:")
		renderAppointments(overview.RecentAppointments)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
