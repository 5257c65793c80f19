package main

import (
	"fmt"

	"nivlek-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var createMedicationRequest requests.CreateMedication

var medicationsCmd = &cobra.Command{
	Use:   "medications",
	Short: "Browse and prescribe medications",
}

var medicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List medications",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		list, err := app.medications.ListMedications(app.ctx)
		if err != nil {
			return err
		}
		renderMedications(list)
		return nil
	}),
}

var medicationsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Prescribe a new medication",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		created, err := app.medications.CreateMedication(app.ctx, &createMedicationRequest)
		if err != nil {
			return err
		}
		fmt.Printf("Medication created: %s %s (%s)\n", created.Name, created.Dosage, created.ID)
		return nil
	}),
}

var medicationsStatusCmd = &cobra.Command{
	Use:   "status <medication-id> <status>",
	Short: "Set a medication's status",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		if err := app.medications.UpdateMedicationStatus(app.ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Medication %s marked %s\n", args[0], args[1])
		return nil
	}),
}

func init() {
	flags := medicationsAddCmd.Flags()
	flags.StringVar(&createMedicationRequest.PatientID, "patient-id", "", "patient identifier")
	flags.StringVar(&createMedicationRequest.Name, "name", "", "medication name")
	flags.StringVar(&createMedicationRequest.Dosage, "dosage", "", "dosage, e.g. 500mg")
	flags.StringVar(&createMedicationRequest.Frequency, "frequency", "", "frequency, e.g. twice daily")
	flags.StringVar(&createMedicationRequest.Route, "route", "oral", "oral, intravenous, intramuscular, topical or inhalation")
	flags.StringVar(&createMedicationRequest.StartDate, "start-date", "", "start date, YYYY-MM-DD")
	flags.StringVar(&createMedicationRequest.EndDate, "end-date", "", "end date, YYYY-MM-DD")
	flags.StringVar(&createMedicationRequest.Instructions, "instructions", "", "instructions for the patient")
	flags.StringVar(&createMedicationRequest.Status, "status", "active", "active, completed or discontinued")
	flags.StringVar(&createMedicationRequest.PrescribedBy, "prescribed-by", "", "prescribing doctor")
	medicationsAddCmd.MarkFlagRequired("patient-id")
	medicationsAddCmd.MarkFlagRequired("name")
	medicationsAddCmd.MarkFlagRequired("dosage")
	medicationsAddCmd.MarkFlagRequired("frequency")
	medicationsAddCmd.MarkFlagRequired("start-date")
	medicationsAddCmd.MarkFlagRequired("prescribed-by")

	medicationsCmd.AddCommand(medicationsListCmd, medicationsAddCmd, medicationsStatusCmd)
	rootCmd.AddCommand(medicationsCmd)
}
