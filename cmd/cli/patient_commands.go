package main

import (
	"fmt"

	"nivlek-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var (
	patientSearchTerm string

	createPatientRequest requests.CreatePatient
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Browse and register patients",
}

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients, optionally filtered by a search term",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		list, err := app.patients.ListPatients(app.ctx, patientSearchTerm)
		if err != nil {
			return err
		}
		renderPatients(list)
		return nil
	}),
}

var patientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new patient",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		created, err := app.patients.CreatePatient(app.ctx, &createPatientRequest)
		if err != nil {
			return err
		}
		fmt.Printf("Patient created: %s (%s)\n", created.Name, created.ID)
		return nil
	}),
}

func init() {
	patientsListCmd.Flags().StringVar(&patientSearchTerm, "search", "", "filter by name or MRN")

	flags := patientsAddCmd.Flags()
	flags.StringVar(&createPatientRequest.Name, "name", "", "full name")
	flags.StringVar(&createPatientRequest.MRN, "mrn", "", "medical record number")
	flags.StringVar(&createPatientRequest.DateOfBirth, "date-of-birth", "", "date of birth, YYYY-MM-DD")
	flags.StringVar(&createPatientRequest.Gender, "gender", "", "male, female or other")
	flags.StringVar(&createPatientRequest.Phone, "phone", "", "phone number")
	flags.StringVar(&createPatientRequest.Email, "email", "", "email address")
	flags.StringVar(&createPatientRequest.Address, "address", "", "home address")
	flags.StringVar(&createPatientRequest.EmergencyContact, "emergency-contact", "", "emergency contact")
	flags.StringVar(&createPatientRequest.MedicalHistory, "medical-history", "", "medical history")
	flags.StringVar(&createPatientRequest.Allergies, "allergies", "", "known allergies")
	flags.StringVar(&createPatientRequest.CurrentMedications, "current-medications", "", "current medications")
	patientsAddCmd.MarkFlagRequired("name")
	patientsAddCmd.MarkFlagRequired("mrn")
	patientsAddCmd.MarkFlagRequired("date-of-birth")
	patientsAddCmd.MarkFlagRequired("gender")

	patientsCmd.AddCommand(patientsListCmd, patientsAddCmd)
	rootCmd.AddCommand(patientsCmd)
}
