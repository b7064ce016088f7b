package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/workflow"
	"github.com/openhire/openhire/pkg/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your job seeker profile",
	Long:  "View and edit the profile that gets snapshotted into your applications",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your full profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		snap := a.Service.Profile().Snapshot()
		cmd.Println(titleStyle.Render("Your Profile"))
		cmd.Printf("%s %s\n", labelStyle.Render("Name:"), snap.Name)
		cmd.Printf("%s %s | %s\n", labelStyle.Render("Contact:"), snap.Contact, snap.Phone)
		if snap.About != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("About:"), snap.About)
		}
		if len(snap.Skills) > 0 {
			cmd.Println(labelStyle.Render("\nSkills:"))
			for _, skill := range snap.Skills {
				cmd.Printf("  • %s\n", skill)
			}
		}
		if len(snap.Education) > 0 {
			cmd.Println(labelStyle.Render("\nEducation:"))
			for _, edu := range snap.Education {
				cmd.Printf("  • %s, %s (%s)\n", edu.Degree, edu.Institution, edu.Year)
			}
		}
		if snap.QuickLinks.LinkedIn != "" {
			cmd.Printf("\n%s %s\n", labelStyle.Render("LinkedIn:"), snap.QuickLinks.LinkedIn)
		}
		if snap.QuickLinks.GitHub != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("GitHub:"), snap.QuickLinks.GitHub)
		}
		if snap.Resume != nil {
			cmd.Printf("%s %s\n", labelStyle.Render("Resume:"), snap.Resume.Name)
		}
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the core profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		current := a.Service.Profile().Get()
		in := workflow.ProfileInput{
			Name:    current.Name,
			About:   current.About,
			Contact: current.Contact,
			Phone:   current.Phone,
		}
		if cmd.Flags().Changed("name") {
			in.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("about") {
			in.About, _ = cmd.Flags().GetString("about")
		}
		if cmd.Flags().Changed("contact") {
			in.Contact, _ = cmd.Flags().GetString("contact")
		}
		if cmd.Flags().Changed("phone") {
			in.Phone, _ = cmd.Flags().GetString("phone")
		}

		if err := a.Service.UpdateProfile(in); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		cmd.Println("✓ Profile updated")
		return nil
	},
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Add or remove profile skills",
}

var addSkillCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := a.Service.AddSkill(args[0]); err != nil {
			return fmt.Errorf("add skill: %w", err)
		}
		cmd.Printf("✓ Added skill %q\n", args[0])
		return nil
	},
}

var removeSkillCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := a.Service.RemoveSkill(args[0]); err != nil {
			return fmt.Errorf("remove skill: %w", err)
		}
		cmd.Printf("✓ Removed skill %q\n", args[0])
		return nil
	},
}

var addEducationCmd = &cobra.Command{
	Use:   "education",
	Short: "Add an education entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		degree, _ := cmd.Flags().GetString("degree")
		institution, _ := cmd.Flags().GetString("institution")
		year, _ := cmd.Flags().GetString("year")
		eduType, _ := cmd.Flags().GetString("type")
		score, _ := cmd.Flags().GetString("score")

		err = a.Service.AddEducation(models.Education{
			Degree:      degree,
			Institution: institution,
			Year:        year,
			Type:        eduType,
			Score:       score,
		})
		if err != nil {
			return fmt.Errorf("add education: %w", err)
		}
		cmd.Printf("✓ Added %s, %s\n", degree, institution)
		return nil
	},
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Set your LinkedIn and GitHub links",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		current := a.Service.Profile().QuickLinks()
		in := workflow.QuickLinksInput{LinkedIn: current.LinkedIn, GitHub: current.GitHub}
		if cmd.Flags().Changed("linkedin") {
			in.LinkedIn, _ = cmd.Flags().GetString("linkedin")
		}
		if cmd.Flags().Changed("github") {
			in.GitHub, _ = cmd.Flags().GetString("github")
		}

		if err := a.Service.UpdateQuickLinks(in); err != nil {
			return fmt.Errorf("update links: %w", err)
		}
		cmd.Println("✓ Links updated")
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Attach a resume file to your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}

		info, err := os.Stat(args[0])
		if err != nil {
			return fmt.Errorf("resume file: %w", err)
		}

		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resume file: %w", err)
		}

		err = a.Service.SetResume(models.ResumeFile{
			Name:         info.Name(),
			Size:         info.Size(),
			Type:         "application/pdf",
			LastModified: info.ModTime().UnixMilli(),
			URL:          "file://" + abs,
		})
		if err != nil {
			return fmt.Errorf("set resume: %w", err)
		}
		cmd.Printf("✓ Resume set to %s\n", info.Name())
		return nil
	},
}

var imageCmd = &cobra.Command{
	Use:   "image <path-or-url>",
	Short: "Set your profile image reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := a.Service.Profile().SetProfileImage(args[0]); err != nil {
			return fmt.Errorf("set image: %w", err)
		}
		cmd.Println("✓ Profile image updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(setProfileCmd)
	profileCmd.AddCommand(skillCmd)
	profileCmd.AddCommand(addEducationCmd)
	profileCmd.AddCommand(linksCmd)
	profileCmd.AddCommand(resumeCmd)
	profileCmd.AddCommand(imageCmd)
	skillCmd.AddCommand(addSkillCmd)
	skillCmd.AddCommand(removeSkillCmd)

	setProfileCmd.Flags().String("name", "", "Full name")
	setProfileCmd.Flags().String("about", "", "Short bio")
	setProfileCmd.Flags().String("contact", "", "Contact email")
	setProfileCmd.Flags().String("phone", "", "Phone number")

	addEducationCmd.Flags().String("degree", "", "Degree or qualification")
	addEducationCmd.Flags().String("institution", "", "School or university")
	addEducationCmd.Flags().String("year", "", "Year of completion")
	addEducationCmd.Flags().String("type", "", "Full-time, Part-time or Distance")
	addEducationCmd.Flags().String("score", "", "Grade or percentage")

	linksCmd.Flags().String("linkedin", "", "LinkedIn profile URL")
	linksCmd.Flags().String("github", "", "GitHub profile URL")
}
