package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "Read the active role's notification feed",
}

var listNotificationsCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the feed, filtered by your notification settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		feed := a.Service.Feed(role)
		if all {
			feed = a.Service.Notifications(role).List()
		}

		if len(feed) == 0 {
			cmd.Println("No notifications.")
			return nil
		}

		unread := a.Service.Notifications(role).Unread()
		cmd.Println(titleStyle.Render(fmt.Sprintf("Notifications (%d unread)", unread)))
		for _, n := range feed {
			marker := " "
			if !n.Read {
				marker = "●"
			}
			cmd.Printf("\n%s %s\n", valueStyle.Render(marker), n.Title)
			cmd.Printf("  %s\n", n.Message)
			cmd.Printf("  %s %s | %s %s\n",
				labelStyle.Render("At:"), n.Timestamp.Format("Jan 2 15:04"),
				labelStyle.Render("ID:"), n.ID)
		}
		return nil
	},
}

var readNotificationCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark one notification as read",
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

		if err := a.Service.MarkNotificationRead(role, args[0]); err != nil {
			return fmt.Errorf("mark read: %w", err)
		}
		cmd.Println("✓ Marked as read")
		return nil
	},
}

var readAllNotificationsCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp(cmd)
		if err != nil {
			return err
		}
		role, err := currentRole(cmd, a)
		if err != nil {
			return err
		}

		if err := a.Service.MarkAllNotificationsRead(role); err != nil {
			return fmt.Errorf("mark all read: %w", err)
		}
		cmd.Println("✓ All notifications marked as read")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(listNotificationsCmd)
	notificationsCmd.AddCommand(readNotificationCmd)
	notificationsCmd.AddCommand(readAllNotificationsCmd)

	listNotificationsCmd.Flags().Bool("all", false, "Ignore settings filters and show the full feed")
}
