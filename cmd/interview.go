package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/search"
	"github.com/openhire/openhire/internal/workflow"
)

func interviewDetails(date, timeOfDay string, duration int, interviewer, link string) workflow.InterviewDetails {
	return workflow.InterviewDetails{
		Date:        date,
		Time:        timeOfDay,
		Duration:    duration,
		Interviewer: interviewer,
		MeetingLink: link,
	}
}

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Manage scheduled interviews",
}

var listInterviewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("search")
		interviews := search.FilterInterviews(a.Service.Interviews().List(), query)
		if len(interviews) == 0 {
			cmd.Println("No interviews found.")
			return nil
		}

		cmd.Println(titleStyle.Render("Interviews"))
		for i, iv := range interviews {
			cmd.Printf("\n%s. %s for %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), iv.Candidate, iv.Position)
			cmd.Printf("   %s %s at %s (%d min)\n", labelStyle.Render("When:"), iv.Date, iv.Time, iv.Duration)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), string(iv.Status))
			if iv.Interviewer != "" {
				cmd.Printf("   %s %s\n", labelStyle.Render("Interviewer:"), iv.Interviewer)
			}
			if iv.MeetingLink != "" {
				cmd.Printf("   %s %s\n", labelStyle.Render("Link:"), valueStyle.Render(iv.MeetingLink))
			}
			cmd.Printf("   %s %s\n", labelStyle.Render("ID:"), iv.ID)
		}
		return nil
	},
}

var rescheduleInterviewCmd = &cobra.Command{
	Use:   "reschedule <interview-id>",
	Short: "Reschedule an interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")
		duration, _ := cmd.Flags().GetInt("duration")
		interviewer, _ := cmd.Flags().GetString("interviewer")
		link, _ := cmd.Flags().GetString("link")

		iv, err := a.Service.RescheduleInterview(args[0], interviewDetails(date, timeOfDay, duration, interviewer, link))
		if err != nil {
			return fmt.Errorf("reschedule interview: %w", err)
		}
		cmd.Printf("✓ Interview for %s moved to %s at %s\n", iv.Candidate, iv.Date, iv.Time)
		return nil
	},
}

var cancelInterviewCmd = &cobra.Command{
	Use:   "cancel <interview-id>",
	Short: "Cancel an interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		iv, err := a.Service.CancelInterview(args[0])
		if err != nil {
			return fmt.Errorf("cancel interview: %w", err)
		}
		cmd.Printf("✓ Interview for %s cancelled\n", iv.Candidate)
		return nil
	},
}

var completeInterviewCmd = &cobra.Command{
	Use:   "complete <interview-id>",
	Short: "Mark an interview as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		iv, err := a.Service.CompleteInterview(args[0])
		if err != nil {
			return fmt.Errorf("complete interview: %w", err)
		}
		cmd.Printf("✓ Interview for %s marked completed\n", iv.Candidate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)
	interviewCmd.AddCommand(listInterviewsCmd)
	interviewCmd.AddCommand(rescheduleInterviewCmd)
	interviewCmd.AddCommand(cancelInterviewCmd)
	interviewCmd.AddCommand(completeInterviewCmd)

	listInterviewsCmd.Flags().String("search", "", "Filter by candidate, position or status")

	rescheduleInterviewCmd.Flags().String("date", "", "New interview date")
	rescheduleInterviewCmd.Flags().String("time", "", "New interview time")
	rescheduleInterviewCmd.Flags().Int("duration", 30, "Duration in minutes")
	rescheduleInterviewCmd.Flags().String("interviewer", "", "Interviewer name")
	rescheduleInterviewCmd.Flags().String("link", "", "Meeting link")
}
