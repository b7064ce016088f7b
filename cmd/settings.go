package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/pkg/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Notification and appearance settings",
}

var showSettingsCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active role's settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("Settings (%s)", string(role))))
		switch role {
		case models.RoleRecruiter:
			rs := a.Service.Settings().Recruiter()
			cmd.Printf("%s %v\n", labelStyle.Render("Application alerts:"), rs.JobApps)
		default:
			js := a.Service.Settings().Jobseeker()
			cmd.Printf("%s %v\n", labelStyle.Render("Job alerts:"), js.JobAlerts)
			cmd.Printf("%s %v\n", labelStyle.Render("Interview alerts:"), js.InterviewAlerts)
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Theme:"), a.Service.Settings().Theme(role))
		return nil
	},
}

var notifySettingsCmd = &cobra.Command{
	Use:   "notify",
	Short: "Toggle notification filters",
	Example: `  openhire settings notify --job-alerts=false
  openhire settings notify --role recruiter --job-apps=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		if role == models.RoleRecruiter {
			rs := a.Service.Settings().Recruiter()
			if cmd.Flags().Changed("job-apps") {
				rs.JobApps, _ = cmd.Flags().GetBool("job-apps")
			}
			if err := a.Service.UpdateRecruiterSettings(rs); err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
		} else {
			js := a.Service.Settings().Jobseeker()
			if cmd.Flags().Changed("job-alerts") {
				js.JobAlerts, _ = cmd.Flags().GetBool("job-alerts")
			}
			if cmd.Flags().Changed("interview-alerts") {
				js.InterviewAlerts, _ = cmd.Flags().GetBool("interview-alerts")
			}
			if err := a.Service.UpdateJobseekerSettings(js); err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
		}

		cmd.Println("✓ Notification settings updated")
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Set the active role's theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		if err := a.Service.SetTheme(role, args[0]); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}
		cmd.Printf("✓ Theme set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(showSettingsCmd)
	settingsCmd.AddCommand(notifySettingsCmd)
	settingsCmd.AddCommand(themeCmd)

	notifySettingsCmd.Flags().Bool("job-alerts", true, "Jobseeker: receive new job alerts")
	notifySettingsCmd.Flags().Bool("interview-alerts", true, "Jobseeker: receive interview alerts")
	notifySettingsCmd.Flags().Bool("job-apps", true, "Recruiter: receive application alerts")
}
