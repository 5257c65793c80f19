package main

import (
	"fmt"

	"nivlek-client/internal/app/services/core/appointments"
	"nivlek-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var (
	appointmentStatusFilter string

	createAppointmentRequest requests.CreateAppointment
)

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Browse and schedule appointments",
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments, optionally filtered by status",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		list, err := app.appointments.ListAppointments(app.ctx)
		if err != nil {
			return err
		}
		renderAppointments(appointments.FilterByStatus(list, appointmentStatusFilter))
		return nil
	}),
}

var appointmentsScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a new appointment",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		created, err := app.appointments.CreateAppointment(app.ctx, &createAppointmentRequest)
		if err != nil {
			return err
		}
		fmt.Printf("Appointment scheduled: %s at %s\n", created.ID, created.AppointmentDate)
		return nil
	}),
}

var appointmentsStatusCmd = &cobra.Command{
	Use:   "status <appointment-id> <status>",
	Short: "Set an appointment's status",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		if err := app.appointments.UpdateAppointmentStatus(app.ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Appointment %s marked %s\n", args[0], args[1])
		return nil
	}),
}

func init() {
	appointmentsListCmd.Flags().StringVar(&appointmentStatusFilter, "status", "all", "scheduled, completed, cancelled, no-show or all")

	flags := appointmentsScheduleCmd.Flags()
	flags.StringVar(&createAppointmentRequest.PatientID, "patient-id", "", "patient identifier")
	flags.StringVar(&createAppointmentRequest.DoctorName, "doctor", "", "doctor name")
	flags.StringVar(&createAppointmentRequest.AppointmentDate, "date", "", "appointment date and time")
	flags.IntVar(&createAppointmentRequest.Duration, "duration", 30, "duration in minutes")
	flags.StringVar(&createAppointmentRequest.Type, "type", "consultation", "consultation, follow-up, procedure or emergency")
	flags.StringVar(&createAppointmentRequest.Notes, "notes", "", "notes")
	appointmentsScheduleCmd.MarkFlagRequired("patient-id")
	appointmentsScheduleCmd.MarkFlagRequired("doctor")
	appointmentsScheduleCmd.MarkFlagRequired("date")

	appointmentsCmd.AddCommand(appointmentsListCmd, appointmentsScheduleCmd, appointmentsStatusCmd)
	rootCmd.AddCommand(appointmentsCmd)
}
