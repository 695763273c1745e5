package client

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Email == "" {
				if req.Email, err = a.readLine("Email: "); err != nil {
					return err
				}
			}
			if req.Username == "" {
				if req.Username, err = a.readLine("Username: "); err != nil {
					return err
				}
			}
			if req.Password, err = a.readSecret("Password: "); err != nil {
				return err
			}

			userID, err := a.auth.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created (id %d). Run `notes login` to sign in.\n", req.Username, userID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Username == "" {
				if req.Username, err = a.readLine("Username: "); err != nil {
					return err
				}
			}
			if req.Password, err = a.readSecret("Password: "); err != nil {
				return err
			}

			if err = a.auth.Login(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")

	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *App) profileCmd() *cobra.Command {
	return authenticated(&cobra.Command{
		Use:   "profile",
		Short: "Show the signed in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.auth.Profile(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username: %s\n", p.Username)
			fmt.Fprintf(out, "Email:    %s\n", p.Email)
			fmt.Fprintf(out, "Created:  %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	})
}

func (a *App) passwdCmd() *cobra.Command {
	return authenticated(&cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				req models.ChangePasswordRequest
				err error
			)
			if req.CurrentPassword, err = a.readSecret("Current password: "); err != nil {
				return err
			}
			if req.NewPassword, err = a.readSecret("New password: "); err != nil {
				return err
			}
			if req.RepeatedPassword, err = a.readSecret("Repeat new password: "); err != nil {
				return err
			}

			if err = a.auth.ChangePassword(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	})
}
