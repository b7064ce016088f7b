package workflow

import "github.com/openhire/openhire/pkg/models"

// Feed returns the role's notifications filtered by its settings toggles,
// newest first. The stored feed is untouched; filtering is a read-time
// concern.
func (s *Service) Feed(role models.Role) []models.Notification {
	list := s.Notifications(role).List()

	var keep func(models.Notification) bool
	switch role {
	case models.RoleJobseeker:
		settings := s.settings.Jobseeker()
		keep = func(n models.Notification) bool {
			if n.Type == models.NotifyNewJob {
				return settings.JobAlerts
			}
			if n.Type == models.NotifyInterviewScheduled {
				return settings.InterviewAlerts
			}
			return true
		}
	case models.RoleRecruiter:
		settings := s.settings.Recruiter()
		keep = func(n models.Notification) bool {
			if n.Type == models.NotifyApplication {
				return settings.JobApps
			}
			return true
		}
	default:
		return list
	}

	filtered := make([]models.Notification, 0, len(list))
	for _, n := range list {
		if keep(n) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// MarkNotificationRead flips one notification to read and fans the change
// out.
func (s *Service) MarkNotificationRead(role models.Role, id string) error {
	feed := s.Notifications(role)
	if err := feed.MarkRead(id); err != nil {
		return err
	}
	s.bus.Publish(feed.Key())
	return nil
}

// MarkAllNotificationsRead flips the whole feed to read.
func (s *Service) MarkAllNotificationsRead(role models.Role) error {
	feed := s.Notifications(role)
	if err := feed.MarkAllRead(); err != nil {
		return err
	}
	s.bus.Publish(feed.Key())
	return nil
}

// UpdateJobseekerSettings stores the toggles and nudges feed listeners,
// since the filtered view may have changed.
func (s *Service) UpdateJobseekerSettings(v models.JobseekerSettings) error {
	if err := s.settings.SetJobseeker(v); err != nil {
		return err
	}
	s.bus.Publish(s.Notifications(models.RoleJobseeker).Key())
	return nil
}

// UpdateRecruiterSettings stores the toggles and nudges feed listeners.
func (s *Service) UpdateRecruiterSettings(v models.RecruiterSettings) error {
	if err := s.settings.SetRecruiter(v); err != nil {
		return err
	}
	s.bus.Publish(s.Notifications(models.RoleRecruiter).Key())
	return nil
}

// SetTheme stores a role's theme mode.
func (s *Service) SetTheme(role models.Role, mode string) error {
	if mode != "light" && mode != "dark" {
		return &ValidationError{Field: "theme", Message: "Theme must be light or dark"}
	}
	return s.settings.SetTheme(role, mode)
}
