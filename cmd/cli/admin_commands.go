package main

import (
	"fmt"
	"strconv"

	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/exceptions"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative views, separate from the user session",
}

// requireAdmin mirrors the admin route guard: no persisted admin identity
// means the command is turned away toward the admin login.
func requireAdmin() error {
	current, err := app.admin.CurrentAdmin(app.ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	return nil
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as an administrator",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		adminUser, err := app.admin.Login(app.ctx, adminUsername, adminPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as admin %s (%s)\n", adminUser.Name, adminUser.Username)
		return nil
	}),
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the administrator",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := app.admin.Logout(app.ctx); err != nil {
			return err
		}
		fmt.Println("Admin logged out.")
		return nil
	}),
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "System-wide totals",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		stats, err := app.admin.GetStats(app.ctx)
		if err != nil {
			return err
		}
		renderKeyValues([][2]string{
			{"Total users", strconv.Itoa(stats.TotalUsers)},
			{"Total patients", strconv.Itoa(stats.TotalPatients)},
			{"Total appointments", strconv.Itoa(stats.TotalAppointments)},
			{"Active sessions", strconv.Itoa(stats.ActiveSessions)},
		})
		return nil
	}),
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all accounts",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		users, err := app.admin.ListUsers(app.ctx)
		if err != nil {
			return err
		}
		renderUsers(users)
		return nil
	}),
}

var adminPatientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List all patients",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		list, err := app.admin.ListPatients(app.ctx)
		if err != nil {
			return err
		}
		renderPatients(list)
		return nil
	}),
}

var adminAppointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "List all appointments",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		list, err := app.admin.ListAppointments(app.ctx)
		if err != nil {
			return err
		}
		renderAppointments(list)
		return nil
	}),
}

func init() {
	adminLoginCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	adminLoginCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	adminLoginCmd.MarkFlagRequired("username")
	adminLoginCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminStatsCmd, adminUsersCmd, adminPatientsCmd, adminAppointmentsCmd)
	rootCmd.AddCommand(adminCmd)
}
