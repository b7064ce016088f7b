package workflow

import (
	"fmt"

	"github.com/openhire/openhire/pkg/models"
)

// JobInput is the recruiter's posting form.
type JobInput struct {
	Title           string `validate:"required"`
	Type            string `validate:"required"`
	Description     string `validate:"required"`
	Location        string `validate:"required"`
	MinSalary       string
	MaxSalary       string
	Openings        string
	JobLevel        string
	Department      string
	Benefits        string
	Qualification   string
	Skills          string
	Country         string
	Industry        string
	LastDateToApply string
}

// PostJob creates an open posting and announces it to job seekers.
func (s *Service) PostJob(in JobInput) (models.JobPost, error) {
	if err := checkStruct(in); err != nil {
		return models.JobPost{}, err
	}

	job := models.JobPost{
		ID:              s.nextNumericID(),
		Title:           in.Title,
		Type:            in.Type,
		Description:     in.Description,
		Location:        in.Location,
		MinSalary:       in.MinSalary,
		MaxSalary:       in.MaxSalary,
		Openings:        in.Openings,
		JobLevel:        in.JobLevel,
		Department:      in.Department,
		Benefits:        in.Benefits,
		Qualification:   in.Qualification,
		Skills:          in.Skills,
		Country:         in.Country,
		Industry:        in.Industry,
		LastDateToApply: in.LastDateToApply,
		Status:          models.JobOpen,
		Date:            s.now(),
	}
	n := s.newNotification(
		models.NotifyNewJob,
		fmt.Sprintf("New Job Posted: %s", job.Title),
		fmt.Sprintf("A new %s position for %s has been posted in %s", job.Type, job.Title, job.Location),
		job.ID,
	)

	if err := s.jobs.Upsert(job); err != nil {
		return models.JobPost{}, err
	}
	if err := s.pushNotification(models.RoleJobseeker, n); err != nil {
		return models.JobPost{}, err
	}
	return job, nil
}

// EditJob overwrites a posting's form fields. The id, status, posting date
// and the applied/saved flags are preserved.
func (s *Service) EditJob(id int64, in JobInput) (models.JobPost, error) {
	if err := checkStruct(in); err != nil {
		return models.JobPost{}, err
	}

	job, ok := s.jobs.Find(id)
	if !ok {
		return models.JobPost{}, ErrNotFound
	}

	job.Title = in.Title
	job.Type = in.Type
	job.Description = in.Description
	job.Location = in.Location
	job.MinSalary = in.MinSalary
	job.MaxSalary = in.MaxSalary
	job.Openings = in.Openings
	job.JobLevel = in.JobLevel
	job.Department = in.Department
	job.Benefits = in.Benefits
	job.Qualification = in.Qualification
	job.Skills = in.Skills
	job.Country = in.Country
	job.Industry = in.Industry
	job.LastDateToApply = in.LastDateToApply

	if err := s.jobs.Upsert(job); err != nil {
		return models.JobPost{}, err
	}
	return job, nil
}

// ToggleJobStatus flips Open and Closed. Closing a job broadcasts a
// job_closed notification to the shared job-seeker feed; reopening is
// silent.
func (s *Service) ToggleJobStatus(id int64) (models.JobPost, error) {
	job, ok := s.jobs.Find(id)
	if !ok {
		return models.JobPost{}, ErrNotFound
	}

	closing := job.Status == models.JobOpen
	if closing {
		job.Status = models.JobClosed
	} else {
		job.Status = models.JobOpen
	}

	if err := s.jobs.Upsert(job); err != nil {
		return models.JobPost{}, err
	}
	if closing {
		n := s.newNotification(
			models.NotifyJobClosed,
			"Job Closed",
			fmt.Sprintf("The job %q has been closed.", job.Title),
			job.ID,
		)
		if err := s.pushNotification(models.RoleJobseeker, n); err != nil {
			return models.JobPost{}, err
		}
	}
	return job, nil
}

// SaveJob toggles the seeker's saved flag on a posting.
func (s *Service) SaveJob(id int64) (models.JobPost, error) {
	job, ok := s.jobs.Find(id)
	if !ok {
		return models.JobPost{}, ErrNotFound
	}
	job.Saved = !job.Saved
	if err := s.jobs.Upsert(job); err != nil {
		return models.JobPost{}, err
	}
	return job, nil
}

// DeleteJob removes a posting outright.
func (s *Service) DeleteJob(id int64) error {
	if _, ok := s.jobs.Find(id); !ok {
		return ErrNotFound
	}
	return s.jobs.Remove(id)
}
