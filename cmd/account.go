package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/workflow"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts and sessions",
	Long:  "Sign up, log in and out, change your password or delete your account",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account for the active role",
	Example: `  openhire account signup --role jobseeker \
      --name "Asha Rao" --email asha@example.com --mobile 9876543210 --password 'Secret1!'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		mobile, _ := cmd.Flags().GetString("mobile")
		password, _ := cmd.Flags().GetString("password")

		acct, err := a.Service.Signup(role, workflow.SignupInput{
			Name:            name,
			Email:           email,
			Mobile:          mobile,
			Password:        password,
			ConfirmPassword: password,
		})
		if err != nil {
			return fmt.Errorf("signup: %w", err)
		}

		cmd.Printf("✓ Registered %s as %s\n", acct.Email, string(role))
		cmd.Println("Log in with 'openhire account login'")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as the active role",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		provider, _ := cmd.Flags().GetString("provider")

		if provider != "" {
			if err := a.Service.SocialLogin(provider); err != nil {
				return err
			}
			return nil
		}

		acct, err := a.Service.Login(role, email, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		cmd.Printf("✓ Logged in as %s (%s)\n", acct.Name, string(role))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the active role's session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		if err := a.Service.Logout(role); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		cmd.Printf("✓ Logged out of %s\n", string(role))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account for the active role",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		acct, ok := a.Service.Session(role).Get()
		if !ok {
			cmd.Printf("Not logged in as %s.\n", string(role))
			return nil
		}

		cmd.Printf("%s %s\n", labelStyle.Render("Name:"), acct.Name)
		cmd.Printf("%s %s\n", labelStyle.Render("Email:"), acct.Email)
		cmd.Printf("%s %s\n", labelStyle.Render("Role:"), string(role))
		return nil
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the logged-in account's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		old, _ := cmd.Flags().GetString("old")
		newPw, _ := cmd.Flags().GetString("new")
		logoutAll, _ := cmd.Flags().GetBool("logout-all")

		err = a.Service.ChangePassword(role, workflow.ChangePasswordInput{
			OldPassword:     old,
			NewPassword:     newPw,
			ConfirmPassword: newPw,
			LogoutAll:       logoutAll,
		})
		if err != nil {
			return fmt.Errorf("change password: %w", err)
		}

		cmd.Println("✓ Password changed")
		if logoutAll {
			cmd.Println("All sessions cleared. Log in again with the new password.")
		}
		return nil
	},
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the logged-in account and its role state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			cmd.Println("This removes the account, its session and its settings.")
			cmd.Println("Re-run with --yes to confirm.")
			return nil
		}

		if err := a.Service.DeleteAccount(role); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		cmd.Printf("✓ Account deleted for %s\n", string(role))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(signupCmd)
	accountCmd.AddCommand(loginCmd)
	accountCmd.AddCommand(logoutCmd)
	accountCmd.AddCommand(whoamiCmd)
	accountCmd.AddCommand(changePasswordCmd)
	accountCmd.AddCommand(deleteAccountCmd)

	signupCmd.Flags().String("name", "", "Full name")
	signupCmd.Flags().String("email", "", "Email address")
	signupCmd.Flags().String("mobile", "", "10-digit mobile number")
	signupCmd.Flags().String("password", "", "Password")

	loginCmd.Flags().String("email", "", "Email address")
	loginCmd.Flags().String("password", "", "Password")
	loginCmd.Flags().String("provider", "", "Social login provider (google, facebook)")

	changePasswordCmd.Flags().String("old", "", "Current password")
	changePasswordCmd.Flags().String("new", "", "New password")
	changePasswordCmd.Flags().Bool("logout-all", false, "Clear the session after the change")

	deleteAccountCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
