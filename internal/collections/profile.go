package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Profile groups the job seeker's profile record and its satellite
// collections. Each satellite lives under its own key so the management
// screens can save them independently.
type Profile struct {
	s store.Store
}

// NewProfile returns the profile accessor.
func NewProfile(s store.Store) Profile {
	return Profile{s: s}
}

func (p Profile) Get() models.UserProfile {
	return store.Read(p.s, KeyUserProfile, models.UserProfile{})
}

func (p Profile) Set(up models.UserProfile) error {
	return store.Write(p.s, KeyUserProfile, up)
}

func (p Profile) Education() []models.Education {
	return store.Read(p.s, KeyUserEducation, []models.Education{})
}

func (p Profile) SetEducation(list []models.Education) error {
	return store.Write(p.s, KeyUserEducation, list)
}

func (p Profile) Skills() []string {
	return store.Read(p.s, KeyUserSkills, []string{})
}

func (p Profile) SetSkills(list []string) error {
	return store.Write(p.s, KeyUserSkills, list)
}

func (p Profile) Experiences() []models.Experience {
	return store.Read(p.s, KeyUserExperiences, []models.Experience{})
}

func (p Profile) SetExperiences(list []models.Experience) error {
	return store.Write(p.s, KeyUserExperiences, list)
}

func (p Profile) Internships() []models.Experience {
	return store.Read(p.s, KeyUserInternships, []models.Experience{})
}

func (p Profile) SetInternships(list []models.Experience) error {
	return store.Write(p.s, KeyUserInternships, list)
}

func (p Profile) Projects() []models.Project {
	return store.Read(p.s, KeyUserProjects, []models.Project{})
}

func (p Profile) SetProjects(list []models.Project) error {
	return store.Write(p.s, KeyUserProjects, list)
}

func (p Profile) Certificates() []models.Certificate {
	return store.Read(p.s, KeyUserCertificates, []models.Certificate{})
}

func (p Profile) SetCertificates(list []models.Certificate) error {
	return store.Write(p.s, KeyUserCertificates, list)
}

func (p Profile) QuickLinks() models.QuickLinks {
	return store.Read(p.s, KeyUserQuickLinks, models.QuickLinks{})
}

func (p Profile) SetQuickLinks(links models.QuickLinks) error {
	return store.Write(p.s, KeyUserQuickLinks, links)
}

func (p Profile) Resume() *models.ResumeFile {
	return store.Read[*models.ResumeFile](p.s, KeyUserResume, nil)
}

func (p Profile) SetResume(r models.ResumeFile) error {
	return store.Write(p.s, KeyUserResume, r)
}

// ProfileImage is stored as a raw data URL, not JSON, so it bypasses the
// Read/Write helpers.
func (p Profile) ProfileImage() string {
	raw, ok, err := p.s.Get(KeyUserProfileImage)
	if err != nil || !ok {
		return ""
	}
	return raw
}

func (p Profile) SetProfileImage(dataURL string) error {
	return p.s.Set(KeyUserProfileImage, dataURL)
}

// Snapshot assembles the full profile embedded in an Applicant record so
// the recruiter view needs no further lookups.
func (p Profile) Snapshot() models.FullProfile {
	return models.FullProfile{
		UserProfile: p.Get(),
		Education:   p.Education(),
		Skills:      p.Skills(),
		QuickLinks:  p.QuickLinks(),
		Resume:      p.Resume(),
	}
}
