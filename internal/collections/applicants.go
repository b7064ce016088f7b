package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// ApplicantList is an applicant collection. The same accessor backs both
// job_applicants (the recruiter's view) and applied_jobs (the seeker's own
// denormalized copy); the workflow layer keeps the two in step.
type ApplicantList struct {
	s   store.Store
	key string
}

// NewApplicants returns the accessor for job_applicants.
func NewApplicants(s store.Store) ApplicantList {
	return ApplicantList{s: s, key: KeyApplicants}
}

// NewAppliedJobs returns the accessor for applied_jobs.
func NewAppliedJobs(s store.Store) ApplicantList {
	return ApplicantList{s: s, key: KeyAppliedJobs}
}

// List returns every applicant in the collection.
func (a ApplicantList) List() []models.Applicant {
	return store.Read(a.s, a.key, []models.Applicant{})
}

// Find returns the applicant with the given id.
func (a ApplicantList) Find(id int64) (models.Applicant, bool) {
	for _, app := range a.List() {
		if app.ID == id {
			return app, true
		}
	}
	return models.Applicant{}, false
}

// FindByJob returns the applicants for a job id.
func (a ApplicantList) FindByJob(jobID int64) []models.Applicant {
	var out []models.Applicant
	for _, app := range a.List() {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out
}

// Upsert replaces the applicant with a matching id, or appends it.
func (a ApplicantList) Upsert(app models.Applicant) error {
	apps := a.List()
	for i := range apps {
		if apps[i].ID == app.ID {
			apps[i] = app
			return a.Replace(apps)
		}
	}
	return a.Replace(append(apps, app))
}

// Remove deletes the applicant with the given id.
func (a ApplicantList) Remove(id int64) error {
	apps := a.List()
	kept := apps[:0]
	for _, app := range apps {
		if app.ID != id {
			kept = append(kept, app)
		}
	}
	return a.Replace(kept)
}

// Replace overwrites the whole collection.
func (a ApplicantList) Replace(apps []models.Applicant) error {
	return store.Write(a.s, a.key, apps)
}
