package workflow

import (
	"fmt"

	"github.com/openhire/openhire/pkg/models"
)

// statusNotice maps a pipeline status to the job seeker's notification.
func statusNotice(status models.ApplicantStatus, appliedFor string) (typ, title, message string, ok bool) {
	switch status {
	case models.ApplicantInterviewScheduled:
		return models.NotifyInterviewScheduled, "Interview Scheduled",
			fmt.Sprintf("Your interview for %s has been scheduled.", appliedFor), true
	case models.ApplicantOnHold:
		return models.NotifyOnHold, "Application On Hold",
			fmt.Sprintf("Your application for %s is put on hold.", appliedFor), true
	case models.ApplicantRejected:
		return models.NotifyRejected, "Application Rejected",
			fmt.Sprintf("Your application for %s has been rejected.", appliedFor), true
	}
	return "", "", "", false
}

// SetApplicantStatus moves an application through the recruiter pipeline.
// Both the recruiter copy and the seeker's applied_jobs copy are updated
// together, and the seeker is notified for interview/hold/reject moves.
// An unknown status is rejected before anything is written; a missing
// applicant is a silent no-op.
func (s *Service) SetApplicantStatus(applicantID int64, status models.ApplicantStatus) (*models.Applicant, error) {
	switch status {
	case models.ApplicantApplied, models.ApplicantInterviewScheduled,
		models.ApplicantOnHold, models.ApplicantRejected:
	default:
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("Unknown applicant status %q", status)}
	}

	applicant, ok := s.applicants.Find(applicantID)
	if !ok {
		return nil, nil
	}

	applicant.Status = status

	if err := s.applicants.Upsert(applicant); err != nil {
		return nil, err
	}
	if err := s.applied.Upsert(applicant); err != nil {
		return nil, err
	}
	if typ, title, message, notify := statusNotice(status, applicant.AppliedFor); notify {
		n := s.newNotification(typ, title, message, applicant.JobID)
		if err := s.pushNotification(models.RoleJobseeker, n); err != nil {
			return nil, err
		}
	}
	return &applicant, nil
}
