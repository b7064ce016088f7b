package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openhire/openhire/pkg/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View portal statistics",
	Long:  "Display counts across jobs, applicants and interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		jobs := a.Service.Jobs().List()
		apps := a.Service.Applicants().List()
		interviews := a.Service.Interviews().List()

		if len(jobs) == 0 && len(apps) == 0 {
			cmd.Println("Nothing to report yet. Post jobs with 'openhire job post'")
			return nil
		}

		stats := calculateStats(jobs, apps, interviews)

		cmd.Println(titleStyle.Render("Portal Statistics"))

		cmd.Printf("\n%s\n", labelStyle.Render("Jobs"))
		cmd.Printf("  Total: %d\n", len(jobs))
		cmd.Printf("  Open: %d\n", stats.OpenJobs)
		cmd.Printf("  Closed: %d\n", stats.ClosedJobs)

		cmd.Printf("\n%s\n", labelStyle.Render("Applicants"))
		cmd.Printf("  Total: %d\n", len(apps))
		for _, status := range []models.ApplicantStatus{
			models.ApplicantApplied,
			models.ApplicantInterviewScheduled,
			models.ApplicantOnHold,
			models.ApplicantRejected,
		} {
			if count := stats.ApplicantsByStatus[status]; count > 0 {
				percentage := float64(count) / float64(len(apps)) * 100
				cmd.Printf("  %s: %d (%.1f%%)\n", string(status), count, percentage)
			}
		}

		if len(interviews) > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Interviews"))
			cmd.Printf("  Total: %d\n", len(interviews))
			for status, count := range stats.InterviewsByStatus {
				cmd.Printf("  %s: %d\n", string(status), count)
			}
		}

		if stats.OpenJobs > 0 {
			perJob := float64(len(apps)) / float64(stats.OpenJobs)
			cmd.Printf("\n%s\n", labelStyle.Render("Pipeline"))
			cmd.Printf("  Applicants per open job: %.1f\n", perJob)
		}
		return nil
	},
}

type portalStats struct {
	OpenJobs           int
	ClosedJobs         int
	ApplicantsByStatus map[models.ApplicantStatus]int
	InterviewsByStatus map[models.InterviewStatus]int
}

func calculateStats(jobs []models.JobPost, apps []models.Applicant, interviews []models.Interview) portalStats {
	stats := portalStats{
		ApplicantsByStatus: make(map[models.ApplicantStatus]int),
		InterviewsByStatus: make(map[models.InterviewStatus]int),
	}

	for _, job := range jobs {
		if job.Status == models.JobClosed {
			stats.ClosedJobs++
		} else {
			stats.OpenJobs++
		}
	}
	for _, app := range apps {
		stats.ApplicantsByStatus[app.Status]++
	}
	for _, iv := range interviews {
		stats.InterviewsByStatus[iv.Status]++
	}
	return stats
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
