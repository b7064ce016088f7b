package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/search"
	"github.com/openhire/openhire/pkg/models"
)

var applicantsCmd = &cobra.Command{
	Use:   "applicants",
	Short: "Work the applicant pipeline",
	Long:  "List applicants, move them through the pipeline and schedule interviews",
}

var listApplicantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List applicants",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("search")
		jobID, _ := cmd.Flags().GetInt64("job")

		var apps []models.Applicant
		if jobID != 0 {
			apps = a.Service.Applicants().FindByJob(jobID)
		} else {
			apps = a.Service.Applicants().List()
		}
		apps = search.FilterApplicants(apps, query)

		if len(apps) == 0 {
			cmd.Println("No applicants found.")
			return nil
		}

		cmd.Println(titleStyle.Render("Applicants"))
		for i, app := range apps {
			cmd.Printf("\n%s. %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), app.Name)
			cmd.Printf("   %s %s\n", labelStyle.Render("Applied for:"), app.AppliedFor)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), string(app.Status))
			cmd.Printf("   %s %s | %s\n", labelStyle.Render("Contact:"), app.Email, app.Phone)
			cmd.Printf("   %s %d\n", labelStyle.Render("ID:"), app.ID)
		}
		return nil
	},
}

var showApplicantCmd = &cobra.Command{
	Use:   "show <applicant-id>",
	Short: "Show an applicant's profile snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, ok := a.Service.Applicants().Find(id)
		if !ok {
			return fmt.Errorf("no applicant with id %d", id)
		}

		cmd.Println(titleStyle.Render(app.Name))
		cmd.Printf("%s %s\n", labelStyle.Render("Applied for:"), app.AppliedFor)
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), string(app.Status))
		cmd.Printf("%s %s | %s\n", labelStyle.Render("Contact:"), app.Email, app.Phone)
		if app.FullProfile.About != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("About:"), app.FullProfile.About)
		}
		if len(app.FullProfile.Skills) > 0 {
			cmd.Println(labelStyle.Render("\nSkills:"))
			for _, skill := range app.FullProfile.Skills {
				cmd.Printf("  • %s\n", skill)
			}
		}
		if len(app.FullProfile.Education) > 0 {
			cmd.Println(labelStyle.Render("\nEducation:"))
			for _, edu := range app.FullProfile.Education {
				cmd.Printf("  • %s, %s (%s)\n", edu.Degree, edu.Institution, edu.Year)
			}
		}
		if app.Resume != nil {
			cmd.Printf("\n%s %s\n", labelStyle.Render("Resume:"), app.Resume.Name)
		}
		if app.FullProfile.QuickLinks.LinkedIn != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("LinkedIn:"), app.FullProfile.QuickLinks.LinkedIn)
		}
		if app.FullProfile.QuickLinks.GitHub != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("GitHub:"), app.FullProfile.QuickLinks.GitHub)
		}
		return nil
	},
}

var applicantStatusCmd = &cobra.Command{
	Use:   "status <applicant-id> <status>",
	Short: "Move an applicant through the pipeline",
	Long: `Set an applicant's pipeline status. Valid statuses:
  "Applied", "Interview Scheduled", "On Hold", "Rejected"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, err := a.Service.SetApplicantStatus(id, models.ApplicantStatus(args[1]))
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		if app == nil {
			cmd.Printf("No applicant with id %d, nothing changed.\n", id)
			return nil
		}

		cmd.Printf("✓ %s is now %s\n", app.Name, string(app.Status))
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <applicant-id>",
	Short: "Schedule an interview for an applicant",
	Example: `  openhire applicants schedule 1718000000000 \
      --date 2026-09-04 --time 14:00 --duration 45 --interviewer "Priya"`,
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

		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")
		duration, _ := cmd.Flags().GetInt("duration")
		interviewer, _ := cmd.Flags().GetString("interviewer")
		link, _ := cmd.Flags().GetString("link")

		interview, err := a.Service.ScheduleInterview(id, interviewDetails(date, timeOfDay, duration, interviewer, link))
		if err != nil {
			return fmt.Errorf("schedule interview: %w", err)
		}
		if interview == nil {
			cmd.Printf("No applicant with id %d, nothing scheduled.\n", id)
			return nil
		}

		cmd.Printf("✓ Interview scheduled for %s on %s at %s\n", interview.Candidate, interview.Date, interview.Time)
		cmd.Printf("  %s %s\n", labelStyle.Render("ID:"), interview.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applicantsCmd)
	applicantsCmd.AddCommand(listApplicantsCmd)
	applicantsCmd.AddCommand(showApplicantCmd)
	applicantsCmd.AddCommand(applicantStatusCmd)
	applicantsCmd.AddCommand(scheduleCmd)

	listApplicantsCmd.Flags().String("search", "", "Filter by name, email, position or status")
	listApplicantsCmd.Flags().Int64("job", 0, "Only applicants for this job id")

	scheduleCmd.Flags().String("date", "", "Interview date")
	scheduleCmd.Flags().String("time", "", "Interview time")
	scheduleCmd.Flags().Int("duration", 30, "Duration in minutes")
	scheduleCmd.Flags().String("interviewer", "", "Interviewer name")
	scheduleCmd.Flags().String("link", "", "Meeting link")
}
