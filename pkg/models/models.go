package models

import "time"

// Role partitions accounts, sessions and some collections by key prefix.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobseeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// JobStatus is the open/closed state of a posting.
type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
)

// ApplicantStatus tracks an application through the recruiter's pipeline.
type ApplicantStatus string

const (
	ApplicantApplied            ApplicantStatus = "Applied"
	ApplicantInterviewScheduled ApplicantStatus = "Interview Scheduled"
	ApplicantOnHold             ApplicantStatus = "On Hold"
	ApplicantRejected           ApplicantStatus = "Rejected"
)

// InterviewStatus is the lifecycle state of a scheduled interview.
type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "Scheduled"
	InterviewCompleted   InterviewStatus = "Completed"
	InterviewCancelled   InterviewStatus = "Cancelled"
	InterviewRescheduled InterviewStatus = "Rescheduled"
)

// Notification types understood by the feed filters.
const (
	NotifyNewJob             = "new_job"
	NotifyApplication        = "application"
	NotifyInterviewScheduled = "interviewscheduled"
	NotifyOnHold             = "onhold"
	NotifyRejected           = "rejected"
	NotifyComplete           = "complete"
	NotifyCancel             = "cancel"
	NotifyReschedule         = "reschedule"
	NotifyJobClosed          = "job_closed"
)

// JobPost is a recruiter's job posting.
type JobPost struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	MinSalary       string    `json:"minSalary"`
	MaxSalary       string    `json:"maxSalary"`
	Openings        string    `json:"openings"`
	JobLevel        string    `json:"jobLevel"`
	Department      string    `json:"department"`
	Benefits        string    `json:"benefits"`
	Qualification   string    `json:"qualification"`
	Skills          string    `json:"skills"`
	Country         string    `json:"country"`
	Industry        string    `json:"industry"`
	LastDateToApply string    `json:"lastDateToApply"`
	Status          JobStatus `json:"status"`
	Date            time.Time `json:"date"`
	Applied         bool      `json:"applied,omitempty"`
	Saved           bool      `json:"saved,omitempty"`
}

// Applicant is one application to a job. The same record is kept in the
// recruiter's job_applicants collection and the seeker's applied_jobs
// collection; the workflow layer writes both copies together.
type Applicant struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	AppliedFor   string          `json:"appliedFor"`
	JobID        int64           `json:"jobId"`
	Status       ApplicantStatus `json:"status"`
	Resume       *ResumeFile     `json:"resume"`
	ProfileImage string          `json:"profileImage"`
	FullProfile  FullProfile     `json:"fullProfile"`
}

// Interview is a scheduled interview for an applicant. IDs are generated
// UUIDs; all mutations match on ID.
type Interview struct {
	ID           string          `json:"id"`
	Candidate    string          `json:"candidate"`
	ProfileImage string          `json:"profileImage"`
	Email        string          `json:"email"`
	Position     string          `json:"position"`
	JobID        int64           `json:"jobId,omitempty"`
	Status       InterviewStatus `json:"status"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Duration     int             `json:"duration"`
	Interviewer  string          `json:"interviewer"`
	MeetingLink  string          `json:"meetingLink"`
}

// Notification is a single entry in a role's notification feed.
// Append-only except for the read flag, which only ever flips to true.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	JobID     int64     `json:"jobId,omitempty"`
}

// UserAccount lives in a role-namespaced users collection. PasswordHash is
// a bcrypt hash; plaintext passwords are never stored.
type UserAccount struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}

// UserProfile is the job seeker's core profile record.
type UserProfile struct {
	Name    string `json:"name"`
	About   string `json:"about"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

// Education is one entry of the userEducation collection.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Type        string `json:"type"`
	Score       string `json:"score"`
}

// Experience covers both userExperiences and userInternships entries.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is one entry of the userProjects collection.
type Project struct {
	Title        string `json:"title"`
	Technologies string `json:"technologies"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
}

// Certificate is one entry of the userCertificates collection.
type Certificate struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	IssueDate    string `json:"issueDate"`
	File         string `json:"file,omitempty"`
}

// QuickLinks holds the seeker's external profile URLs.
type QuickLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ResumeFile is the stored metadata for an uploaded resume.
type ResumeFile struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	LastModified int64  `json:"lastModified"`
	URL          string `json:"url"`
}

// FullProfile is the profile snapshot embedded in an Applicant so the
// recruiter view is self-contained.
type FullProfile struct {
	UserProfile
	Education  []Education `json:"education"`
	Skills     []string    `json:"skills"`
	QuickLinks QuickLinks  `json:"quickLinks"`
	Resume     *ResumeFile `json:"resume"`
}

// JobseekerSettings are the seeker's notification toggles.
type JobseekerSettings struct {
	JobAlerts       bool `json:"jobAlerts"`
	InterviewAlerts bool `json:"interviewAlerts"`
}

// RecruiterSettings are the recruiter's notification toggles.
type RecruiterSettings struct {
	JobApps bool `json:"jobApps"`
}

// RecruiterProfile is the display snapshot written at recruiter login.
type RecruiterProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
