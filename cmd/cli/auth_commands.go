package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := app.requireAnonymous(); err != nil {
			return err
		}
		if err := app.sessions.Login(app.ctx, loginEmail, loginPassword); err != nil {
			return err
		}
		session := app.sessions.Snapshot()
		fmt.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Email)
		return nil
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := app.requireAnonymous(); err != nil {
			return err
		}
		if err := app.sessions.Register(app.ctx, registerName, registerEmail, registerPassword); err != nil {
			return err
		}
		session := app.sessions.Snapshot()
		fmt.Printf("Account created. Logged in as %s (%s)\n", session.User.Name, session.User.Email)
		return nil
	}),
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Log in with a throwaway demo account",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		if err := app.requireAnonymous(); err != nil {
			return err
		}
		if err := app.sessions.DemoLogin(app.ctx); err != nil {
			return err
		}
		session := app.sessions.Snapshot()
		fmt.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Email)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out locally",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		app.sessions.Initialize(app.ctx)
		if err := app.sessions.Logout(app.ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	RunE: run(func(cmd *cobra.Command, args []string) error {
		session := app.sessions.Initialize(app.ctx)
		if session.User == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s> role=%s\n", session.User.Name, session.User.Email, session.User.Role)
		return nil
	}),
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password, at least 8 characters")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd, demoCmd, logoutCmd, whoamiCmd)
}
