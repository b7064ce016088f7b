package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/app"
	"github.com/openhire/openhire/pkg/models"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively",
	Long:  "Launch an interactive job browser for viewing, saving and applying to jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		runBrowser(a)
		return nil
	},
}

func runBrowser(a *app.App) {
	jobs := a.Service.Jobs().List()
	if len(jobs) == 0 {
		fmt.Println("No jobs found. Post jobs with 'openhire job post'")
		return
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println(titleStyle.Render("Job Browser"))
		fmt.Println("Press 'q' to quit, or enter a job number to view details")
		fmt.Println()

		for i, job := range jobs {
			marker := ""
			if job.Applied {
				marker = " (applied)"
			}
			fmt.Printf("%d. %s in %s%s\n", i+1, job.Title, job.Location, marker)
		}

		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if input == "q" || input == "Q" {
			break
		}

		jobNum, err := strconv.Atoi(input)
		if err != nil || jobNum < 1 || jobNum > len(jobs) {
			fmt.Println("Invalid selection")
			continue
		}

		browseJobDetails(a, jobs[jobNum-1], reader)
		// Re-read so applied/saved flags reflect any action taken
		jobs = a.Service.Jobs().List()
	}
}

func browseJobDetails(a *app.App, job models.JobPost, reader *bufio.Reader) {
	for {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println(titleStyle.Render(job.Title))
		fmt.Printf("%s %s | %s\n", labelStyle.Render("Type:"), job.Type, job.Location)
		if job.MinSalary != "" || job.MaxSalary != "" {
			fmt.Printf("%s %s - %s\n", labelStyle.Render("Salary:"), job.MinSalary, job.MaxSalary)
		}
		if job.Skills != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Skills:"), job.Skills)
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), string(job.Status))

		if job.Description != "" {
			fmt.Println(labelStyle.Render("\nDescription:"))
			fmt.Println(job.Description)
		}
		if job.Applied {
			fmt.Printf("\n%s\n", valueStyle.Render("You have applied to this job."))
		}

		fmt.Println("\nOptions:")
		fmt.Println("  [a] Apply to this job")
		fmt.Println("  [s] Save / unsave for later")
		fmt.Println("  [b] Back to list")
		fmt.Print("\n> ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "a":
			applicant, err := a.Service.ApplyToJob(job.ID)
			switch {
			case err != nil:
				fmt.Printf("Error: %v\n", err)
			case applicant == nil:
				fmt.Println("Already applied to this job.")
			default:
				fmt.Println("✓ Application submitted!")
			}
			return
		case "s":
			updated, err := a.Service.SaveJob(job.ID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else if updated.Saved {
				fmt.Println("✓ Saved for later")
			} else {
				fmt.Println("✓ Removed from saved jobs")
			}
			job = updated
		case "b":
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
