// Package workflow implements the multi-collection business operations.
// Every operation computes all of its new values before the first write, so
// a failed precondition never leaves a partial update behind.
package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openhire/openhire/internal/collections"
	"github.com/openhire/openhire/internal/notify"
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Service owns the store, the typed collections and the fan-out bus.
type Service struct {
	store      store.Store
	bus        *notify.Bus
	jobs       collections.Jobs
	applicants collections.ApplicantList
	applied    collections.ApplicantList
	interviews collections.Interviews
	profile    collections.Profile
	settings   collections.Settings

	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	lastID int64
}

// New wires a Service over the given store and bus.
func New(s store.Store, bus *notify.Bus) *Service {
	return &Service{
		store:      s,
		bus:        bus,
		jobs:       collections.NewJobs(s),
		applicants: collections.NewApplicants(s),
		applied:    collections.NewAppliedJobs(s),
		interviews: collections.NewInterviews(s),
		profile:    collections.NewProfile(s),
		settings:   collections.NewSettings(s),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Collection accessors for read paths in the presentation layer.

func (s *Service) Jobs() collections.Jobs                 { return s.jobs }
func (s *Service) Applicants() collections.ApplicantList  { return s.applicants }
func (s *Service) AppliedJobs() collections.ApplicantList { return s.applied }
func (s *Service) Interviews() collections.Interviews     { return s.interviews }
func (s *Service) Profile() collections.Profile           { return s.profile }
func (s *Service) Settings() collections.Settings         { return s.settings }

func (s *Service) Notifications(role models.Role) collections.Notifications {
	return collections.NewNotifications(s.store, role)
}

func (s *Service) Accounts(role models.Role) collections.Accounts {
	return collections.NewAccounts(s.store, role)
}

func (s *Service) Session(role models.Role) collections.Session {
	return collections.NewSession(s.store, role)
}

// Bus exposes the fan-out bus so views can subscribe to feed changes.
func (s *Service) Bus() *notify.Bus { return s.bus }

// nextNumericID returns a millisecond-timestamp id, bumped past the last
// issued one so two records created in the same millisecond never collide.
func (s *Service) nextNumericID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// newNotification stamps a fresh unread notification.
func (s *Service) newNotification(typ, title, message string, jobID int64) models.Notification {
	return models.Notification{
		ID:        s.newID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.now(),
		Read:      false,
		JobID:     jobID,
	}
}

// pushNotification appends to the role's feed and fans the change out to
// in-process listeners.
func (s *Service) pushNotification(role models.Role, n models.Notification) error {
	feed := s.Notifications(role)
	if err := feed.Prepend(n); err != nil {
		return err
	}
	s.bus.Publish(feed.Key())
	return nil
}
