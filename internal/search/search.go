// Package search implements the case-insensitive filtering behind the
// list views, plus a skills-based relevance score for the seeker's job
// list.
package search

import (
	"strings"

	"github.com/openhire/openhire/pkg/models"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// MatchJob reports whether a posting matches the query across the fields
// the job list searches.
func MatchJob(job models.JobPost, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return containsFold(job.Title, q) ||
		containsFold(job.Location, q) ||
		containsFold(job.Type, q) ||
		containsFold(job.Department, q) ||
		containsFold(job.Skills, q) ||
		containsFold(string(job.Status), q)
}

// FilterJobs returns the postings matching the query.
func FilterJobs(jobs []models.JobPost, query string) []models.JobPost {
	out := make([]models.JobPost, 0, len(jobs))
	for _, job := range jobs {
		if MatchJob(job, query) {
			out = append(out, job)
		}
	}
	return out
}

// MatchInterview searches candidate, position, interviewer and status.
func MatchInterview(iv models.Interview, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return containsFold(iv.Candidate, q) ||
		containsFold(iv.Position, q) ||
		containsFold(iv.Interviewer, q) ||
		containsFold(string(iv.Status), q)
}

// FilterInterviews returns the interviews matching the query.
func FilterInterviews(list []models.Interview, query string) []models.Interview {
	out := make([]models.Interview, 0, len(list))
	for _, iv := range list {
		if MatchInterview(iv, query) {
			out = append(out, iv)
		}
	}
	return out
}

// MatchApplicant searches name, email, position and status.
func MatchApplicant(app models.Applicant, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return containsFold(app.Name, q) ||
		containsFold(app.Email, q) ||
		containsFold(app.AppliedFor, q) ||
		containsFold(string(app.Status), q)
}

// FilterApplicants returns the applicants matching the query.
func FilterApplicants(list []models.Applicant, query string) []models.Applicant {
	out := make([]models.Applicant, 0, len(list))
	for _, app := range list {
		if MatchApplicant(app, query) {
			out = append(out, app)
		}
	}
	return out
}

// Score rates how well a posting fits the seeker's skills, 0.0 to 1.0.
// The posting's skills field is a comma-separated list; a missing list
// scores neutral.
func Score(job models.JobPost, skills []string) float64 {
	if len(skills) == 0 {
		return 0.5
	}

	text := strings.ToLower(job.Skills + " " + job.Description + " " + job.Qualification)
	if strings.TrimSpace(text) == "" {
		return 0.5
	}

	matched := 0
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s != "" && strings.Contains(text, s) {
			matched++
		}
	}
	return float64(matched) / float64(len(skills))
}
