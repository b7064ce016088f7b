package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openhire/openhire/internal/app"
	"github.com/openhire/openhire/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "openhire",
	Short: "Local-first job portal for job seekers and recruiters",
	Long: `Openhire is a single-user job portal that keeps all of its state in a
local collection store. Recruiters post jobs, schedule interviews and work
their applicant pipeline; job seekers browse, apply and manage their
profile. Each side gets its own notification feed.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		appInstance = application
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		if appInstance != nil {
			appInstance.Close()
		}
		os.Exit(1)
	}

	if appInstance != nil {
		appInstance.Close()
	}
}

// requireApp pulls the dependency container out of the command context.
func requireApp(cmd *cobra.Command) (*app.App, error) {
	a := app.GetAppFromContext(cmd.Context())
	if a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

// currentRole resolves --role, falling back to the configured default.
func currentRole(cmd *cobra.Command, a *app.App) (models.Role, error) {
	name, _ := cmd.Flags().GetString("role")
	if name == "" {
		name = a.Config.DefaultRole
	}
	role := models.Role(name)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q (want jobseeker, recruiter or admin)", name)
	}
	return role, nil
}

// parseID parses a numeric collection id from a CLI argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}

func init() {
	rootCmd.PersistentFlags().String("role", "", "Act as this role: jobseeker, recruiter, admin")
}
