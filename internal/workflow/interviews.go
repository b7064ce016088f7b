package workflow

import (
	"fmt"

	"github.com/openhire/openhire/pkg/models"
)

// InterviewDetails is the scheduling form shared by schedule and
// reschedule.
type InterviewDetails struct {
	Date        string `validate:"required"`
	Time        string `validate:"required"`
	Duration    int    `validate:"min=5"`
	Interviewer string
	MeetingLink string `validate:"omitempty,url"`
}

// ScheduleInterview moves the applicant to Interview Scheduled, appends an
// interview record and notifies the job seeker. The record gets a
// generated id; every later mutation matches on it.
func (s *Service) ScheduleInterview(applicantID int64, details InterviewDetails) (*models.Interview, error) {
	if err := checkStruct(details); err != nil {
		return nil, err
	}

	applicant, ok := s.applicants.Find(applicantID)
	if !ok {
		return nil, nil
	}

	applicant.Status = models.ApplicantInterviewScheduled
	interview := models.Interview{
		ID:           s.newID(),
		Candidate:    applicant.Name,
		ProfileImage: applicant.ProfileImage,
		Email:        applicant.Email,
		Position:     applicant.AppliedFor,
		JobID:        applicant.JobID,
		Status:       models.InterviewScheduled,
		Date:         details.Date,
		Time:         details.Time,
		Duration:     details.Duration,
		Interviewer:  details.Interviewer,
		MeetingLink:  details.MeetingLink,
	}
	n := s.newNotification(
		models.NotifyInterviewScheduled,
		"Interview Scheduled",
		fmt.Sprintf("Your interview for %s has been scheduled.", applicant.AppliedFor),
		applicant.JobID,
	)

	if err := s.applicants.Upsert(applicant); err != nil {
		return nil, err
	}
	if err := s.applied.Upsert(applicant); err != nil {
		return nil, err
	}
	if err := s.interviews.Upsert(interview); err != nil {
		return nil, err
	}
	if err := s.pushNotification(models.RoleJobseeker, n); err != nil {
		return nil, err
	}
	return &interview, nil
}

// RescheduleInterview replaces the slot details and marks the record
// Rescheduled.
func (s *Service) RescheduleInterview(id string, details InterviewDetails) (models.Interview, error) {
	if err := checkStruct(details); err != nil {
		return models.Interview{}, err
	}

	interview, ok := s.interviews.Find(id)
	if !ok {
		return models.Interview{}, ErrNotFound
	}

	interview.Status = models.InterviewRescheduled
	interview.Date = details.Date
	interview.Time = details.Time
	interview.Duration = details.Duration
	interview.Interviewer = details.Interviewer
	interview.MeetingLink = details.MeetingLink

	return s.finishInterviewUpdate(interview,
		models.NotifyReschedule, "Interview Rescheduled",
		fmt.Sprintf("Your interview for %s has been rescheduled.", interview.Position))
}

// CancelInterview marks the record Cancelled.
func (s *Service) CancelInterview(id string) (models.Interview, error) {
	interview, ok := s.interviews.Find(id)
	if !ok {
		return models.Interview{}, ErrNotFound
	}
	interview.Status = models.InterviewCancelled
	return s.finishInterviewUpdate(interview,
		models.NotifyCancel, "Interview Cancelled",
		fmt.Sprintf("Your interview for %s has been cancelled.", interview.Position))
}

// CompleteInterview marks the record Completed.
func (s *Service) CompleteInterview(id string) (models.Interview, error) {
	interview, ok := s.interviews.Find(id)
	if !ok {
		return models.Interview{}, ErrNotFound
	}
	interview.Status = models.InterviewCompleted
	return s.finishInterviewUpdate(interview,
		models.NotifyComplete, "Interview Completed",
		fmt.Sprintf("Your interview for %s has been marked as completed.", interview.Position))
}

func (s *Service) finishInterviewUpdate(interview models.Interview, typ, title, message string) (models.Interview, error) {
	n := s.newNotification(typ, title, message, interview.JobID)
	if err := s.interviews.Upsert(interview); err != nil {
		return models.Interview{}, err
	}
	if err := s.pushNotification(models.RoleJobseeker, n); err != nil {
		return models.Interview{}, err
	}
	return interview, nil
}
