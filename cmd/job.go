package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openhire/openhire/internal/search"
	"github.com/openhire/openhire/internal/workflow"
	"github.com/openhire/openhire/pkg/models"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
	Long:  "Post, list, edit, toggle and remove job postings",
}

// jobInputFromFlags builds the posting form, starting from an existing job
// for edits so unchanged flags keep their stored values.
func jobInputFromFlags(cmd *cobra.Command, base models.JobPost) workflow.JobInput {
	in := workflow.JobInput{
		Title:           base.Title,
		Type:            base.Type,
		Description:     base.Description,
		Location:        base.Location,
		MinSalary:       base.MinSalary,
		MaxSalary:       base.MaxSalary,
		Openings:        base.Openings,
		JobLevel:        base.JobLevel,
		Department:      base.Department,
		Benefits:        base.Benefits,
		Qualification:   base.Qualification,
		Skills:          base.Skills,
		Country:         base.Country,
		Industry:        base.Industry,
		LastDateToApply: base.LastDateToApply,
	}

	set := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}
	set("title", &in.Title)
	set("type", &in.Type)
	set("description", &in.Description)
	set("location", &in.Location)
	set("min-salary", &in.MinSalary)
	set("max-salary", &in.MaxSalary)
	set("openings", &in.Openings)
	set("level", &in.JobLevel)
	set("department", &in.Department)
	set("benefits", &in.Benefits)
	set("qualification", &in.Qualification)
	set("skills", &in.Skills)
	set("country", &in.Country)
	set("industry", &in.Industry)
	set("last-date", &in.LastDateToApply)
	return in
}

func addJobFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Job title")
	cmd.Flags().String("type", "", "Job type (Full-time, Part-time, Contract, Internship)")
	cmd.Flags().String("description", "", "Job description")
	cmd.Flags().String("location", "", "Job location")
	cmd.Flags().String("min-salary", "", "Minimum salary")
	cmd.Flags().String("max-salary", "", "Maximum salary")
	cmd.Flags().String("openings", "", "Number of openings")
	cmd.Flags().String("level", "", "Job level")
	cmd.Flags().String("department", "", "Department / specialization")
	cmd.Flags().String("benefits", "", "Comma-separated benefits")
	cmd.Flags().String("qualification", "", "Required qualification")
	cmd.Flags().String("skills", "", "Comma-separated skills")
	cmd.Flags().String("country", "", "Country")
	cmd.Flags().String("industry", "", "Industry")
	cmd.Flags().String("last-date", "", "Last date to apply")
}

var postJobCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a new job",
	Example: `  openhire job post --title "Backend Engineer" --type Full-time \
      --description "Build services" --location Bengaluru --skills "Go, SQL"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		job, err := a.Service.PostJob(jobInputFromFlags(cmd, models.JobPost{}))
		if err != nil {
			return fmt.Errorf("post job: %w", err)
		}

		cmd.Printf("✓ Job posted: %s in %s (ID: %d)\n", job.Title, job.Location, job.ID)
		return nil
	},
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("search")
		savedOnly, _ := cmd.Flags().GetBool("saved")
		recommended, _ := cmd.Flags().GetBool("recommended")

		jobs := search.FilterJobs(a.Service.Jobs().List(), query)
		if savedOnly {
			kept := jobs[:0]
			for _, job := range jobs {
				if job.Saved {
					kept = append(kept, job)
				}
			}
			jobs = kept
		}

		if len(jobs) == 0 {
			cmd.Println("No jobs found. Post jobs with 'openhire job post'")
			return nil
		}

		scores := map[int64]float64{}
		if recommended {
			skills := a.Service.Profile().Skills()
			for _, job := range jobs {
				scores[job.ID] = search.Score(job, skills)
			}
			sort.SliceStable(jobs, func(i, j int) bool {
				return scores[jobs[i].ID] > scores[jobs[j].ID]
			})
		}

		cmd.Println(titleStyle.Render("Job Postings"))
		for i, job := range jobs {
			cmd.Printf("\n%s. %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), job.Title)
			cmd.Printf("   %s %s | %s\n", labelStyle.Render("Type:"), job.Type, job.Location)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), string(job.Status))
			cmd.Printf("   %s %d\n", labelStyle.Render("ID:"), job.ID)
			if job.Applied {
				cmd.Printf("   %s\n", valueStyle.Render("Applied"))
			}
			if job.Saved {
				cmd.Printf("   %s\n", valueStyle.Render("Saved"))
			}
			if recommended {
				cmd.Printf("   %s %.0f%%\n", labelStyle.Render("Match:"), scores[job.ID]*100)
			}
		}
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show details of a job posting",
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

		job, ok := a.Service.Jobs().Find(id)
		if !ok {
			return fmt.Errorf("no job with id %d", id)
		}

		caser := cases.Title(language.English)
		cmd.Println(titleStyle.Render(job.Title))
		cmd.Printf("%s %s\n", labelStyle.Render("Type:"), caser.String(job.Type))
		cmd.Printf("%s %s", labelStyle.Render("Location:"), job.Location)
		if job.Country != "" {
			cmd.Printf(", %s", job.Country)
		}
		cmd.Println()
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), string(job.Status))
		if job.MinSalary != "" || job.MaxSalary != "" {
			cmd.Printf("%s %s - %s\n", labelStyle.Render("Salary:"), job.MinSalary, job.MaxSalary)
		}
		if job.Skills != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), job.Skills)
		}
		if job.Qualification != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Qualification:"), job.Qualification)
		}
		if job.LastDateToApply != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Apply by:"), job.LastDateToApply)
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Posted:"), job.Date.Format("Jan 2, 2006"))
		if job.Description != "" {
			cmd.Println(labelStyle.Render("\nDescription:"))
			cmd.Println(job.Description)
		}
		return nil
	},
}

var editJobCmd = &cobra.Command{
	Use:   "edit <job-id>",
	Short: "Edit a job posting",
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

		existing, ok := a.Service.Jobs().Find(id)
		if !ok {
			return fmt.Errorf("no job with id %d", id)
		}

		job, err := a.Service.EditJob(id, jobInputFromFlags(cmd, existing))
		if err != nil {
			return fmt.Errorf("edit job: %w", err)
		}
		cmd.Printf("✓ Job updated: %s (ID: %d)\n", job.Title, job.ID)
		return nil
	},
}

var toggleJobCmd = &cobra.Command{
	Use:   "toggle <job-id>",
	Short: "Toggle a job between Open and Closed",
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

		job, err := a.Service.ToggleJobStatus(id)
		if err != nil {
			return fmt.Errorf("toggle job: %w", err)
		}
		cmd.Printf("✓ Job %q is now %s\n", job.Title, string(job.Status))
		return nil
	},
}

var saveJobCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Save or unsave a job for later",
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

		job, err := a.Service.SaveJob(id)
		if err != nil {
			return fmt.Errorf("save job: %w", err)
		}
		if job.Saved {
			cmd.Printf("✓ Saved %q\n", job.Title)
		} else {
			cmd.Printf("✓ Unsaved %q\n", job.Title)
		}
		return nil
	},
}

var deleteJobCmd = &cobra.Command{
	Use:   "delete <job-id>",
	Short: "Delete a job posting",
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

		if err := a.Service.DeleteJob(id); err != nil {
			return fmt.Errorf("delete job: %w", err)
		}
		cmd.Printf("✓ Job %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobCmd)
	jobCmd.AddCommand(postJobCmd)
	jobCmd.AddCommand(listJobsCmd)
	jobCmd.AddCommand(showJobCmd)
	jobCmd.AddCommand(editJobCmd)
	jobCmd.AddCommand(toggleJobCmd)
	jobCmd.AddCommand(saveJobCmd)
	jobCmd.AddCommand(deleteJobCmd)

	addJobFormFlags(postJobCmd)
	addJobFormFlags(editJobCmd)

	listJobsCmd.Flags().String("search", "", "Filter by title, location, type, skills or status")
	listJobsCmd.Flags().Bool("saved", false, "Only show saved jobs")
	listJobsCmd.Flags().Bool("recommended", false, "Rank by match against your profile skills")
}
