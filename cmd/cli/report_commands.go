package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Fetch aggregate reports",
}

var reportPatientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Patient statistics",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		stats, err := app.reports.GetPatientStatistics(app.ctx)
		if err != nil {
			return err
		}
		renderKeyValues([][2]string{
			{"Total patients", strconv.Itoa(stats.TotalPatients)},
			{"New this month", strconv.Itoa(stats.NewPatientsThisMonth)},
		})
		renderDistribution("\nGender distribution:", stats.GenderDistribution)
		return nil
	}),
}

var reportAppointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Appointment statistics",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		stats, err := app.reports.GetAppointmentStatistics(app.ctx)
		if err != nil {
			return err
		}
		renderDistribution("Status distribution:", stats.StatusDistribution)
		renderDistribution("\nType distribution:", stats.TypeDistribution)

		fmt.Println("\nMonthly trend:")
		table := newTable([]string{"Month", "Count"})
		for _, month := range stats.MonthlyTrend {
			table.Append([]string{month.Month, strconv.Itoa(month.Count)})
		}
		table.Render()
		return nil
	}),
}

var reportMedicationsCmd = &cobra.Command{
	Use:   "medications",
	Short: "Medication statistics",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		stats, err := app.reports.GetMedicationStatistics(app.ctx)
		if err != nil {
			return err
		}
		renderKeyValues([][2]string{
			{"Total medications", strconv.Itoa(stats.TotalMedications)},
		})
		renderDistribution("\nStatus distribution:", stats.StatusDistribution)

		fmt.Println("\nTop medications:")
		table := newTable([]string{"Name", "Count"})
		for _, medication := range stats.TopMedications {
			table.Append([]string{medication.Name, strconv.Itoa(medication.Count)})
		}
		table.Render()
		return nil
	}),
}

var reportPatientListCmd = &cobra.Command{
	Use:   "patient-list",
	Short: "Full patient roster report",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		report, err := app.reports.GetPatientListReport(app.ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Total: %d\n", report.TotalCount)
		renderPatients(report.Patients)
		return nil
	}),
}

func init() {
	reportsCmd.AddCommand(reportPatientsCmd, reportAppointmentsCmd, reportMedicationsCmd, reportPatientListCmd)
	rootCmd.AddCommand(reportsCmd)
}
