// Package collections provides typed accessors over the named collections
// in the store. The key names are the application's external interface:
// every view reads and writes these exact keys, so they must not change.
package collections

import "github.com/openhire/openhire/pkg/models"

const (
	KeyJobPosts         = "job_posts"
	KeyApplicants       = "job_applicants"
	KeyAppliedJobs      = "applied_jobs"
	KeyInterviews       = "interview_history"
	KeyRecruiterProfile = "recruiterProfile"

	KeyUserProfile      = "userProfile"
	KeyUserEducation    = "userEducation"
	KeyUserSkills       = "userSkills"
	KeyUserExperiences  = "userExperiences"
	KeyUserInternships  = "userInternships"
	KeyUserProjects     = "userProjects"
	KeyUserCertificates = "userCertificates"
	KeyUserQuickLinks   = "userQuickLinks"
	KeyUserResume       = "userResume"
	KeyUserProfileImage = "userProfileImage"
)

// NotificationsKey returns the notification feed key for a role.
// Only job seekers and recruiters have feeds.
func NotificationsKey(role models.Role) string {
	return string(role) + "_notifications"
}

// UsersKey returns the role-namespaced account table key.
func UsersKey(role models.Role) string {
	return string(role) + "_users"
}

// SessionKey returns the key holding the role's logged-in account.
func SessionKey(role models.Role) string {
	return string(role) + "_loggedIn"
}

// SettingsKey returns the role's notification settings key.
func SettingsKey(role models.Role) string {
	return string(role) + "_notification_settings"
}

// ThemeKey returns the theme mode key for a role. The recruiter side
// historically used the "employer" prefix, which is kept for
// compatibility with existing stores.
func ThemeKey(role models.Role) string {
	if role == models.RoleRecruiter {
		return "employerThemeMode"
	}
	return string(role) + "ThemeMode"
}
