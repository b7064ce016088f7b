package workflow

import "github.com/openhire/openhire/pkg/models"

// ProfileInput is the editable part of the seeker's core profile.
type ProfileInput struct {
	Name    string `validate:"required"`
	About   string
	Contact string `validate:"required,email"`
	Phone   string `validate:"required"`
}

// UpdateProfile overwrites the core profile record.
func (s *Service) UpdateProfile(in ProfileInput) error {
	if err := checkStruct(in); err != nil {
		return err
	}
	return s.profile.Set(models.UserProfile{
		Name:    in.Name,
		About:   in.About,
		Contact: in.Contact,
		Phone:   in.Phone,
	})
}

// QuickLinksInput carries the external profile URLs.
type QuickLinksInput struct {
	LinkedIn string `validate:"omitempty,url"`
	GitHub   string `validate:"omitempty,url"`
}

// UpdateQuickLinks validates and stores the links.
func (s *Service) UpdateQuickLinks(in QuickLinksInput) error {
	if err := checkStruct(in); err != nil {
		return err
	}
	return s.profile.SetQuickLinks(models.QuickLinks{
		LinkedIn: in.LinkedIn,
		GitHub:   in.GitHub,
	})
}

// AddSkill appends a skill, ignoring blanks and duplicates.
func (s *Service) AddSkill(skill string) error {
	if skill == "" {
		return &ValidationError{Field: "skill", Message: "Skill cannot be empty"}
	}
	skills := s.profile.Skills()
	for _, existing := range skills {
		if existing == skill {
			return nil
		}
	}
	return s.profile.SetSkills(append(skills, skill))
}

// RemoveSkill deletes a skill by value. Removing a missing skill is a
// no-op.
func (s *Service) RemoveSkill(skill string) error {
	skills := s.profile.Skills()
	kept := skills[:0]
	for _, existing := range skills {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	return s.profile.SetSkills(kept)
}

// AddEducation prepends an education entry, newest first as the management
// screen did.
func (s *Service) AddEducation(e models.Education) error {
	if e.Degree == "" || e.Institution == "" {
		return &ValidationError{Field: "education", Message: "Degree and institution are required"}
	}
	return s.profile.SetEducation(append([]models.Education{e}, s.profile.Education()...))
}

// SetResume stores the uploaded resume metadata.
func (s *Service) SetResume(r models.ResumeFile) error {
	if r.Name == "" {
		return &ValidationError{Field: "resume", Message: "Resume file name is required"}
	}
	return s.profile.SetResume(r)
}
