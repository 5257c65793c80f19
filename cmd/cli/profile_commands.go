package main

import (
	"fmt"

	"nivlek-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var updateProfileRequest requests.UpdateProfile

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update the account profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the account profile",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		user, err := app.profile.GetProfile(app.ctx)
		if err != nil {
			return err
		}
		renderKeyValues([][2]string{
			{"Name", user.Name},
			{"Email", user.Email},
			{"Role", user.Role},
			{"Member since", user.CreatedAt},
		})
		return nil
	}),
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name, email or password",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if _, err := app.requireSession(); err != nil {
			return err
		}
		user, err := app.profile.UpdateProfile(app.ctx, &updateProfileRequest)
		if err != nil {
			return err
		}
		fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
		return nil
	}),
}

func init() {
	flags := profileUpdateCmd.Flags()
	flags.StringVar(&updateProfileRequest.Name, "name", "", "new full name")
	flags.StringVar(&updateProfileRequest.Email, "email", "", "new email address")
	flags.StringVar(&updateProfileRequest.CurrentPassword, "current-password", "", "current password, required for a password change")
	flags.StringVar(&updateProfileRequest.NewPassword, "new-password", "", "new password, at least 8 characters")
	flags.StringVar(&updateProfileRequest.ConfirmPassword, "confirm-password", "", "repeat the new password")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
