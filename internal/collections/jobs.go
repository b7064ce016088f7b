package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Jobs is the job_posts collection.
type Jobs struct {
	s store.Store
}

// NewJobs returns the accessor for job_posts.
func NewJobs(s store.Store) Jobs {
	return Jobs{s: s}
}

// List returns every job post, oldest first.
func (j Jobs) List() []models.JobPost {
	return store.Read(j.s, KeyJobPosts, []models.JobPost{})
}

// Find returns the job with the given id.
func (j Jobs) Find(id int64) (models.JobPost, bool) {
	for _, job := range j.List() {
		if job.ID == id {
			return job, true
		}
	}
	return models.JobPost{}, false
}

// Upsert replaces the job with a matching id, or appends it.
func (j Jobs) Upsert(job models.JobPost) error {
	jobs := j.List()
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = job
			return j.Replace(jobs)
		}
	}
	return j.Replace(append(jobs, job))
}

// Remove deletes the job with the given id. Removing a missing job is a
// no-op.
func (j Jobs) Remove(id int64) error {
	jobs := j.List()
	kept := jobs[:0]
	for _, job := range jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	return j.Replace(kept)
}

// Replace overwrites the whole collection.
func (j Jobs) Replace(jobs []models.JobPost) error {
	return store.Write(j.s, KeyJobPosts, jobs)
}
