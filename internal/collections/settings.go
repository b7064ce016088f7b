package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Settings holds the per-role notification toggles and theme mode.
// Toggles default to on.
type Settings struct {
	s store.Store
}

// NewSettings returns the settings accessor.
func NewSettings(s store.Store) Settings {
	return Settings{s: s}
}

func (st Settings) Jobseeker() models.JobseekerSettings {
	def := models.JobseekerSettings{JobAlerts: true, InterviewAlerts: true}
	return store.Read(st.s, SettingsKey(models.RoleJobseeker), def)
}

func (st Settings) SetJobseeker(v models.JobseekerSettings) error {
	return store.Write(st.s, SettingsKey(models.RoleJobseeker), v)
}

func (st Settings) Recruiter() models.RecruiterSettings {
	def := models.RecruiterSettings{JobApps: true}
	return store.Read(st.s, SettingsKey(models.RoleRecruiter), def)
}

func (st Settings) SetRecruiter(v models.RecruiterSettings) error {
	return store.Write(st.s, SettingsKey(models.RoleRecruiter), v)
}

// ClearRole removes the role's settings key, used by account deletion.
func (st Settings) ClearRole(role models.Role) error {
	return st.s.Delete(SettingsKey(role))
}

// Theme returns the role's theme mode, defaulting to light.
func (st Settings) Theme(role models.Role) string {
	raw, ok, err := st.s.Get(ThemeKey(role))
	if err != nil || !ok || raw == "" {
		return "light"
	}
	return raw
}

// SetTheme stores the role's theme mode.
func (st Settings) SetTheme(role models.Role, mode string) error {
	return st.s.Set(ThemeKey(role), mode)
}

// RecruiterProfile is the display snapshot written at recruiter login.
func (st Settings) RecruiterProfile() models.RecruiterProfile {
	return store.Read(st.s, KeyRecruiterProfile, models.RecruiterProfile{})
}

func (st Settings) SetRecruiterProfile(rp models.RecruiterProfile) error {
	return store.Write(st.s, KeyRecruiterProfile, rp)
}

func (st Settings) ClearRecruiterProfile() error {
	return st.s.Delete(KeyRecruiterProfile)
}
