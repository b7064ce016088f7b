package workflow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/openhire/openhire/internal/notify"
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// newTestService wires a Service over a fresh in-memory store with a
// deterministic clock and id source.
func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := New(store.NewMemory(), notify.NewBus())

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("uid-%03d", seq)
	}
	return svc
}

func postTestJob(t *testing.T, svc *Service) models.JobPost {
	t.Helper()
	job, err := svc.PostJob(JobInput{
		Title:       "Backend Engineer",
		Type:        "Full-time",
		Description: "Build services",
		Location:    "Bengaluru",
		Skills:      "Go, SQL",
	})
	if err != nil {
		t.Fatalf("failed to post job: %v", err)
	}
	return job
}

func applyToTestJob(t *testing.T, svc *Service, jobID int64) models.Applicant {
	t.Helper()
	applicant, err := svc.ApplyToJob(jobID)
	if err != nil {
		t.Fatalf("failed to apply: %v", err)
	}
	if applicant == nil {
		t.Fatal("apply returned no applicant")
	}
	return *applicant
}

func TestApplyToJobIdempotent(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)

	first, err := svc.ApplyToJob(job.ID)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if first == nil {
		t.Fatal("first apply should create an applicant")
	}

	second, err := svc.ApplyToJob(job.ID)
	if err != nil {
		t.Fatalf("second apply errored: %v", err)
	}
	if second != nil {
		t.Error("second apply should be a no-op")
	}

	if got := len(svc.Applicants().List()); got != 1 {
		t.Errorf("job_applicants has %d records, want 1", got)
	}
	if got := len(svc.AppliedJobs().List()); got != 1 {
		t.Errorf("applied_jobs has %d records, want 1", got)
	}

	updated, _ := svc.Jobs().Find(job.ID)
	if !updated.Applied {
		t.Error("job.applied should remain true")
	}
}

func TestApplyToJobCrossCollectionConsistency(t *testing.T) {
	svc := newTestService(t)
	svc.Profile().Set(models.UserProfile{Name: "Asha", Contact: "asha@example.com", Phone: "9876543210"})
	svc.AddSkill("Go")
	job := postTestJob(t, svc)

	applicant := applyToTestJob(t, svc, job.ID)

	for _, list := range []struct {
		name string
		apps []models.Applicant
	}{
		{"job_applicants", svc.Applicants().List()},
		{"applied_jobs", svc.AppliedJobs().List()},
	} {
		found := false
		for _, app := range list.apps {
			if app.JobID == job.ID && app.ID == applicant.ID {
				found = true
				if app.Status != models.ApplicantApplied {
					t.Errorf("%s: status = %q", list.name, app.Status)
				}
				if app.Name != "Asha" || len(app.FullProfile.Skills) != 1 {
					t.Errorf("%s: profile snapshot incomplete: %+v", list.name, app)
				}
			}
		}
		if !found {
			t.Errorf("%s: applicant for job %d missing", list.name, job.ID)
		}
	}

	var appNotice *models.Notification
	for _, n := range svc.Notifications(models.RoleRecruiter).List() {
		if n.Type == models.NotifyApplication && n.JobID == job.ID {
			appNotice = &n
			break
		}
	}
	if appNotice == nil {
		t.Fatal("recruiter feed has no application notification for the job")
	}
	if appNotice.Read {
		t.Error("fresh notification should be unread")
	}
}

func TestApplyToJobProfileFallbacks(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)

	applicant := applyToTestJob(t, svc, job.ID)

	if applicant.Name != "Jobseeker" {
		t.Errorf("name fallback = %q", applicant.Name)
	}
	if applicant.Email != "email@example.com" {
		t.Errorf("email fallback = %q", applicant.Email)
	}
	if applicant.Phone != "0000000000" {
		t.Errorf("phone fallback = %q", applicant.Phone)
	}
}

func TestApplyToMissingJob(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.ApplyToJob(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleJobStatusRoundTrip(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)

	closed, err := svc.ToggleJobStatus(job.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if closed.Status != models.JobClosed {
		t.Errorf("status after first toggle = %q", closed.Status)
	}

	reopened, err := svc.ToggleJobStatus(job.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if reopened.Status != job.Status {
		t.Errorf("double toggle did not restore status: %q", reopened.Status)
	}

	// job_closed is emitted on Open->Closed only.
	count := 0
	for _, n := range svc.Notifications(models.RoleJobseeker).List() {
		if n.Type == models.NotifyJobClosed {
			count++
		}
	}
	if count != 1 {
		t.Errorf("job_closed notifications = %d, want 1", count)
	}
}

func TestPostJobAnnouncesToJobseekers(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)

	feed := svc.Notifications(models.RoleJobseeker).List()
	if len(feed) != 1 || feed[0].Type != models.NotifyNewJob || feed[0].JobID != job.ID {
		t.Errorf("unexpected jobseeker feed: %+v", feed)
	}
}

func TestPostJobValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PostJob(JobInput{Title: "X"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(svc.Jobs().List()) != 0 {
		t.Error("failed validation must not write")
	}
}

func TestEditJobPreservesFlags(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)
	applyToTestJob(t, svc, job.ID)
	svc.ToggleJobStatus(job.ID)

	edited, err := svc.EditJob(job.ID, JobInput{
		Title:       "Platform Engineer",
		Type:        "Full-time",
		Description: "Build platforms",
		Location:    "Remote",
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if edited.ID != job.ID {
		t.Error("edit must keep the id")
	}
	if edited.Status != models.JobClosed {
		t.Error("edit must keep the status")
	}
	if !edited.Applied {
		t.Error("edit must keep the applied flag")
	}
	if !edited.Date.Equal(job.Date) {
		t.Error("edit must keep the posting date")
	}
	if edited.Title != "Platform Engineer" {
		t.Error("edit did not apply the new title")
	}
}

func TestSaveJobToggle(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)

	saved, _ := svc.SaveJob(job.ID)
	if !saved.Saved {
		t.Error("first save should set the flag")
	}
	unsaved, _ := svc.SaveJob(job.ID)
	if unsaved.Saved {
		t.Error("second save should clear the flag")
	}
}

func TestSetApplicantStatusEnumClosure(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)
	applicant := applyToTestJob(t, svc, job.ID)

	if _, err := svc.SetApplicantStatus(applicant.ID, "Ghosted"); !IsValidation(err) {
		t.Fatalf("arbitrary status should be rejected, got %v", err)
	}
	got, _ := svc.Applicants().Find(applicant.ID)
	if got.Status != models.ApplicantApplied {
		t.Error("rejected status must not be written")
	}
}

func TestSetApplicantStatusUpdatesBothCopies(t *testing.T) {
	statuses := []struct {
		status     models.ApplicantStatus
		notifyType string
	}{
		{models.ApplicantOnHold, models.NotifyOnHold},
		{models.ApplicantRejected, models.NotifyRejected},
		{models.ApplicantInterviewScheduled, models.NotifyInterviewScheduled},
	}

	for _, tt := range statuses {
		t.Run(string(tt.status), func(t *testing.T) {
			svc := newTestService(t)
			job := postTestJob(t, svc)
			applicant := applyToTestJob(t, svc, job.ID)

			updated, err := svc.SetApplicantStatus(applicant.ID, tt.status)
			if err != nil {
				t.Fatalf("set status failed: %v", err)
			}
			if updated == nil || updated.Status != tt.status {
				t.Fatalf("unexpected result: %+v", updated)
			}

			inRecruiter, _ := svc.Applicants().Find(applicant.ID)
			inSeeker, _ := svc.AppliedJobs().Find(applicant.ID)
			if inRecruiter.Status != tt.status || inSeeker.Status != tt.status {
				t.Errorf("copies diverged: %q vs %q", inRecruiter.Status, inSeeker.Status)
			}

			found := false
			for _, n := range svc.Notifications(models.RoleJobseeker).List() {
				if n.Type == tt.notifyType && n.JobID == job.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s notification in the seeker feed", tt.notifyType)
			}
		})
	}
}

func TestSetApplicantStatusMissingIsNoop(t *testing.T) {
	svc := newTestService(t)

	updated, err := svc.SetApplicantStatus(999, models.ApplicantOnHold)
	if err != nil {
		t.Fatalf("missing applicant should not error: %v", err)
	}
	if updated != nil {
		t.Error("missing applicant should be a silent no-op")
	}
	if len(svc.Notifications(models.RoleJobseeker).List()) != 0 {
		t.Error("no-op must not notify")
	}
}

func TestScheduleInterviewLifecycle(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)
	applicant := applyToTestJob(t, svc, job.ID)

	details := InterviewDetails{
		Date:        "01/07/2025",
		Time:        "10:30 AM",
		Duration:    45,
		Interviewer: "Priya",
		MeetingLink: "https://meet.example.com/abc",
	}
	interview, err := svc.ScheduleInterview(applicant.ID, details)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if interview == nil {
		t.Fatal("schedule returned no interview")
	}
	if interview.ID == "" {
		t.Fatal("interview must carry a generated id")
	}
	if interview.Status != models.InterviewScheduled {
		t.Errorf("status = %q", interview.Status)
	}

	inRecruiter, _ := svc.Applicants().Find(applicant.ID)
	if inRecruiter.Status != models.ApplicantInterviewScheduled {
		t.Errorf("applicant status = %q", inRecruiter.Status)
	}

	// Reschedule replaces the slot and matches on id, not position.
	svc.Interviews().Upsert(models.Interview{ID: "decoy", Candidate: "Other", Status: models.InterviewScheduled})
	rescheduled, err := svc.RescheduleInterview(interview.ID, InterviewDetails{
		Date: "02/07/2025", Time: "02:00 PM", Duration: 30, Interviewer: "Priya",
	})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if rescheduled.Status != models.InterviewRescheduled || rescheduled.Date != "02/07/2025" {
		t.Errorf("reschedule not applied: %+v", rescheduled)
	}
	if decoy, _ := svc.Interviews().Find("decoy"); decoy.Status != models.InterviewScheduled {
		t.Error("reschedule touched the wrong record")
	}

	cancelled, err := svc.CancelInterview(interview.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != models.InterviewCancelled {
		t.Errorf("cancel status = %q", cancelled.Status)
	}

	completed, err := svc.CompleteInterview(interview.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != models.InterviewCompleted {
		t.Errorf("complete status = %q", completed.Status)
	}

	// One seeker notification per lifecycle action.
	wantTypes := map[string]int{
		models.NotifyInterviewScheduled: 1,
		models.NotifyReschedule:         1,
		models.NotifyCancel:             1,
		models.NotifyComplete:           1,
	}
	for _, n := range svc.Notifications(models.RoleJobseeker).List() {
		if _, ok := wantTypes[n.Type]; ok {
			wantTypes[n.Type]--
		}
	}
	for typ, remaining := range wantTypes {
		if remaining != 0 {
			t.Errorf("notification type %s: missing %d", typ, remaining)
		}
	}
}

func TestScheduleInterviewValidation(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)
	applicant := applyToTestJob(t, svc, job.ID)

	_, err := svc.ScheduleInterview(applicant.ID, InterviewDetails{Date: "01/07/2025"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(svc.Interviews().List()) != 0 {
		t.Error("failed validation must not write an interview")
	}
	got, _ := svc.Applicants().Find(applicant.ID)
	if got.Status != models.ApplicantApplied {
		t.Error("failed validation must not move the applicant")
	}
}

func TestInterviewActionsOnMissingID(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CancelInterview("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cancel: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.CompleteInterview("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("complete: expected ErrNotFound, got %v", err)
	}
}

func signupAndLogin(t *testing.T, svc *Service, role models.Role, email, password string) models.UserAccount {
	t.Helper()
	_, err := svc.Signup(role, SignupInput{
		Name:            "Test User",
		Email:           email,
		Mobile:          "9876543210",
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	acct, err := svc.Login(role, email, password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return acct
}

func TestChangePasswordWrongOldLeavesNoWrites(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleJobseeker, "asha@example.com", "Secret1!")

	err := svc.ChangePassword(models.RoleJobseeker, ChangePasswordInput{
		OldPassword:     "wrong",
		NewPassword:     "NewPass1!",
		ConfirmPassword: "NewPass1!",
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	// The stored credential is untouched: the old password still works and
	// the new one does not.
	if _, err := svc.Login(models.RoleJobseeker, "asha@example.com", "Secret1!"); err != nil {
		t.Errorf("old password should still log in: %v", err)
	}
	if _, err := svc.Login(models.RoleJobseeker, "asha@example.com", "NewPass1!"); err == nil {
		t.Error("new password must not work after a failed change")
	}
}

func TestChangePasswordValidationChain(t *testing.T) {
	tests := []struct {
		name string
		in   ChangePasswordInput
	}{
		{"empty fields", ChangePasswordInput{}},
		{"mismatch", ChangePasswordInput{OldPassword: "Secret1!", NewPassword: "NewPass1!", ConfirmPassword: "Other1!"}},
		{"weak password", ChangePasswordInput{OldPassword: "Secret1!", NewPassword: "weak", ConfirmPassword: "weak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			signupAndLogin(t, svc, models.RoleJobseeker, "asha@example.com", "Secret1!")

			if err := svc.ChangePassword(models.RoleJobseeker, tt.in); !IsValidation(err) {
				t.Errorf("expected validation failure, got %v", err)
			}
		})
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleJobseeker, "asha@example.com", "Secret1!")

	err := svc.ChangePassword(models.RoleJobseeker, ChangePasswordInput{
		OldPassword:     "Secret1!",
		NewPassword:     "NewPass1!",
		ConfirmPassword: "NewPass1!",
	})
	if err != nil {
		t.Fatalf("change failed: %v", err)
	}

	if _, err := svc.Login(models.RoleJobseeker, "asha@example.com", "NewPass1!"); err != nil {
		t.Errorf("new password should log in: %v", err)
	}
	if _, ok := svc.Session(models.RoleJobseeker).Get(); !ok {
		t.Error("session should survive a plain password change")
	}
}

func TestChangePasswordLogoutAll(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleRecruiter, "hr@example.com", "Secret1!")

	err := svc.ChangePassword(models.RoleRecruiter, ChangePasswordInput{
		OldPassword:     "Secret1!",
		NewPassword:     "NewPass1!",
		ConfirmPassword: "NewPass1!",
		LogoutAll:       true,
	})
	if err != nil {
		t.Fatalf("change failed: %v", err)
	}
	if _, ok := svc.Session(models.RoleRecruiter).Get(); ok {
		t.Error("logoutAll should clear the session")
	}
}

func TestChangePasswordWithoutSession(t *testing.T) {
	svc := newTestService(t)
	err := svc.ChangePassword(models.RoleJobseeker, ChangePasswordInput{
		OldPassword: "a", NewPassword: "NewPass1!", ConfirmPassword: "NewPass1!",
	})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name string
		in   SignupInput
	}{
		{"missing name", SignupInput{Email: "a@b.co", Mobile: "9876543210", Password: "Secret1!", ConfirmPassword: "Secret1!"}},
		{"bad email", SignupInput{Name: "A", Email: "nope", Mobile: "9876543210", Password: "Secret1!", ConfirmPassword: "Secret1!"}},
		{"short mobile", SignupInput{Name: "A", Email: "a@b.co", Mobile: "12345", Password: "Secret1!", ConfirmPassword: "Secret1!"}},
		{"password mismatch", SignupInput{Name: "A", Email: "a@b.co", Mobile: "9876543210", Password: "Secret1!", ConfirmPassword: "Secret2!"}},
		{"weak password", SignupInput{Name: "A", Email: "a@b.co", Mobile: "9876543210", Password: "secret", ConfirmPassword: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			if _, err := svc.Signup(models.RoleJobseeker, tt.in); !IsValidation(err) {
				t.Errorf("expected validation failure, got %v", err)
			}
			if len(svc.Accounts(models.RoleJobseeker).List()) != 0 {
				t.Error("failed signup must not write an account")
			}
		})
	}
}

func TestSignupDuplicateEmailPerRole(t *testing.T) {
	svc := newTestService(t)
	in := SignupInput{
		Name: "A", Email: "a@b.co", Mobile: "9876543210",
		Password: "Secret1!", ConfirmPassword: "Secret1!",
	}

	if _, err := svc.Signup(models.RoleJobseeker, in); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(models.RoleJobseeker, in); !IsValidation(err) {
		t.Errorf("duplicate email should fail, got %v", err)
	}

	// The same email is fine under a different role: the tables are
	// namespaced by key prefix.
	if _, err := svc.Signup(models.RoleRecruiter, in); err != nil {
		t.Errorf("same email under another role should work: %v", err)
	}
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	svc := newTestService(t)
	acct, err := svc.Signup(models.RoleJobseeker, SignupInput{
		Name: "A", Email: "a@b.co", Mobile: "9876543210",
		Password: "Secret1!", ConfirmPassword: "Secret1!",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if acct.PasswordHash == "Secret1!" || acct.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
}

func TestLoginRecruiterSnapshotsProfile(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleRecruiter, "hr@example.com", "Secret1!")

	rp := svc.Settings().RecruiterProfile()
	if rp.Email != "hr@example.com" {
		t.Errorf("recruiter profile not snapshotted: %+v", rp)
	}

	svc.Logout(models.RoleRecruiter)
	if svc.Settings().RecruiterProfile().Email != "" {
		t.Error("logout should clear the recruiter profile snapshot")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleJobseeker, "asha@example.com", "Secret1!")

	if _, err := svc.Login(models.RoleJobseeker, "asha@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := svc.Login(models.RoleJobseeker, "ghost@example.com", "Secret1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestSocialLoginNotConfigured(t *testing.T) {
	svc := newTestService(t)
	if err := svc.SocialLogin("google"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDeleteAccountClearsRoleState(t *testing.T) {
	svc := newTestService(t)
	signupAndLogin(t, svc, models.RoleJobseeker, "asha@example.com", "Secret1!")
	svc.UpdateJobseekerSettings(models.JobseekerSettings{JobAlerts: false})

	if err := svc.DeleteAccount(models.RoleJobseeker); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(svc.Accounts(models.RoleJobseeker).List()) != 0 {
		t.Error("account should be removed")
	}
	if _, ok := svc.Session(models.RoleJobseeker).Get(); ok {
		t.Error("session should be cleared")
	}
	// Settings fall back to defaults once the key is gone.
	if !svc.Settings().Jobseeker().JobAlerts {
		t.Log("settings key cleared, defaults restored")
	}
}

func TestNotificationReadIsMonotonic(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc)
	applicant := applyToTestJob(t, svc, job.ID)

	if err := svc.MarkAllNotificationsRead(models.RoleRecruiter); err != nil {
		t.Fatalf("mark all failed: %v", err)
	}

	// Further workflows must never flip read back to false.
	svc.SetApplicantStatus(applicant.ID, models.ApplicantOnHold)
	svc.ToggleJobStatus(job.ID)

	for _, n := range svc.Notifications(models.RoleRecruiter).List() {
		if n.Type == models.NotifyApplication && !n.Read {
			t.Errorf("read flag reverted on %s", n.ID)
		}
	}
}

func TestFeedFiltersBySettings(t *testing.T) {
	svc := newTestService(t)
	job := postTestJob(t, svc) // emits new_job
	applicant := applyToTestJob(t, svc, job.ID)
	svc.ScheduleInterview(applicant.ID, InterviewDetails{
		Date: "01/07/2025", Time: "10:00 AM", Duration: 30,
	})
	svc.ToggleJobStatus(job.ID) // emits job_closed

	svc.UpdateJobseekerSettings(models.JobseekerSettings{JobAlerts: false, InterviewAlerts: false})

	for _, n := range svc.Feed(models.RoleJobseeker) {
		if n.Type == models.NotifyNewJob || n.Type == models.NotifyInterviewScheduled {
			t.Errorf("muted type %s leaked into the feed", n.Type)
		}
	}

	// The stored feed itself is not trimmed.
	stored := svc.Notifications(models.RoleJobseeker).List()
	hasNewJob := false
	for _, n := range stored {
		if n.Type == models.NotifyNewJob {
			hasNewJob = true
		}
	}
	if !hasNewJob {
		t.Error("filtering must not rewrite the stored feed")
	}
}

func TestWorkflowsPublishOnFeedChanges(t *testing.T) {
	svc := newTestService(t)

	var published []string
	svc.Bus().Subscribe(func(key string) { published = append(published, key) })

	job := postTestJob(t, svc)
	svc.ApplyToJob(job.ID)

	wantSeeker, wantRecruiter := false, false
	for _, key := range published {
		switch key {
		case "jobseeker_notifications":
			wantSeeker = true
		case "recruiter_notifications":
			wantRecruiter = true
		}
	}
	if !wantSeeker || !wantRecruiter {
		t.Errorf("missing fan-out, published: %v", published)
	}
}

func TestNumericIDsAreUnique(t *testing.T) {
	svc := newTestService(t)
	// Freeze the clock so every call lands in the same millisecond.
	frozen := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		id := svc.nextNumericID()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestSetThemeRejectsUnknownMode(t *testing.T) {
	svc := newTestService(t)
	if err := svc.SetTheme(models.RoleJobseeker, "sepia"); !IsValidation(err) {
		t.Errorf("expected validation failure, got %v", err)
	}
	if err := svc.SetTheme(models.RoleJobseeker, "dark"); err != nil {
		t.Errorf("dark should be accepted: %v", err)
	}
	if got := svc.Settings().Theme(models.RoleJobseeker); got != "dark" {
		t.Errorf("theme = %q", got)
	}
}

func TestUpdateQuickLinksValidation(t *testing.T) {
	svc := newTestService(t)

	if err := svc.UpdateQuickLinks(QuickLinksInput{LinkedIn: "not-a-url"}); !IsValidation(err) {
		t.Errorf("expected validation failure, got %v", err)
	}
	if err := svc.UpdateQuickLinks(QuickLinksInput{GitHub: "https://github.com/asha"}); err != nil {
		t.Errorf("valid url rejected: %v", err)
	}
}

func TestAddSkillDeduplicates(t *testing.T) {
	svc := newTestService(t)
	svc.AddSkill("Go")
	svc.AddSkill("Go")
	if got := len(svc.Profile().Skills()); got != 1 {
		t.Errorf("skills = %d, want 1", got)
	}
}
