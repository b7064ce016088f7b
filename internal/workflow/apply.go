package workflow

import (
	"fmt"

	"github.com/openhire/openhire/pkg/models"
)

// ApplyToJob applies the job seeker's current profile to a posting. The
// job's applied flag makes the operation idempotent: a second call is a
// silent no-op and returns a nil applicant.
//
// One call touches four collections — job_posts (applied flag),
// job_applicants, applied_jobs (the seeker's own copy) and the recruiter
// feed — so all new values are computed before the first write.
func (s *Service) ApplyToJob(jobID int64) (*models.Applicant, error) {
	job, ok := s.jobs.Find(jobID)
	if !ok {
		return nil, ErrNotFound
	}
	if job.Applied {
		return nil, nil
	}

	job.Applied = true

	profile := s.profile.Get()
	applicant := models.Applicant{
		ID:           s.nextNumericID(),
		Name:         fallback(profile.Name, "Jobseeker"),
		Email:        fallback(profile.Contact, "email@example.com"),
		Phone:        fallback(profile.Phone, "0000000000"),
		AppliedFor:   job.Title,
		JobID:        job.ID,
		Status:       models.ApplicantApplied,
		Resume:       s.profile.Resume(),
		ProfileImage: s.profile.ProfileImage(),
		FullProfile:  s.profile.Snapshot(),
	}
	n := s.newNotification(
		models.NotifyApplication,
		"New Application",
		fmt.Sprintf("New application for %s", job.Title),
		job.ID,
	)

	if err := s.jobs.Upsert(job); err != nil {
		return nil, err
	}
	if err := s.applicants.Upsert(applicant); err != nil {
		return nil, err
	}
	if err := s.applied.Upsert(applicant); err != nil {
		return nil, err
	}
	if err := s.pushNotification(models.RoleRecruiter, n); err != nil {
		return nil, err
	}
	return &applicant, nil
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
