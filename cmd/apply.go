package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job posting",
	Long: `Apply to an open job posting. The application snapshots your profile
so the recruiter sees it as it was when you applied. Applying twice to
the same job does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		applicant, err := a.Service.ApplyToJob(id)
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		if applicant == nil {
			cmd.Println("Already applied to this job.")
			return nil
		}

		cmd.Printf("✓ Applied to %s\n", applicant.AppliedFor)
		return nil
	},
}

var appliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "List jobs you have applied to",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		apps := a.Service.AppliedJobs().List()
		if len(apps) == 0 {
			cmd.Println("No applications yet. Browse jobs with 'openhire job list'")
			return nil
		}

		cmd.Println(titleStyle.Render("Your Applications"))
		for i, app := range apps {
			cmd.Printf("\n%s. %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), app.AppliedFor)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), string(app.Status))
			cmd.Printf("   %s %d\n", labelStyle.Render("Job ID:"), app.JobID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(appliedCmd)
}
