package collections

import (
	"strings"

	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Accounts is a role's user table. Email is the lookup key and is matched
// case-insensitively.
type Accounts struct {
	s    store.Store
	role models.Role
}

// NewAccounts returns the account table accessor for a role.
func NewAccounts(s store.Store, role models.Role) Accounts {
	return Accounts{s: s, role: role}
}

// List returns every account for the role.
func (a Accounts) List() []models.UserAccount {
	return store.Read(a.s, UsersKey(a.role), []models.UserAccount{})
}

// FindByEmail returns the account with the given email.
func (a Accounts) FindByEmail(email string) (models.UserAccount, bool) {
	for _, acct := range a.List() {
		if strings.EqualFold(acct.Email, email) {
			return acct, true
		}
	}
	return models.UserAccount{}, false
}

// Add appends a new account.
func (a Accounts) Add(acct models.UserAccount) error {
	return a.Replace(append(a.List(), acct))
}

// Update replaces the account with a matching email. Updating a missing
// account is a no-op.
func (a Accounts) Update(acct models.UserAccount) error {
	list := a.List()
	for i := range list {
		if strings.EqualFold(list[i].Email, acct.Email) {
			list[i] = acct
			return a.Replace(list)
		}
	}
	return nil
}

// RemoveByEmail deletes the account with the given email.
func (a Accounts) RemoveByEmail(email string) error {
	list := a.List()
	kept := list[:0]
	for _, acct := range list {
		if !strings.EqualFold(acct.Email, email) {
			kept = append(kept, acct)
		}
	}
	return a.Replace(kept)
}

// Replace overwrites the whole table.
func (a Accounts) Replace(list []models.UserAccount) error {
	return store.Write(a.s, UsersKey(a.role), list)
}

// Session is the role's logged-in pointer.
type Session struct {
	s    store.Store
	role models.Role
}

// NewSession returns the session accessor for a role.
func NewSession(s store.Store, role models.Role) Session {
	return Session{s: s, role: role}
}

// Get returns the logged-in account, if any.
func (se Session) Get() (models.UserAccount, bool) {
	acct := store.Read(se.s, SessionKey(se.role), models.UserAccount{})
	if acct.Email == "" {
		return models.UserAccount{}, false
	}
	return acct, true
}

// Set records the logged-in account.
func (se Session) Set(acct models.UserAccount) error {
	return store.Write(se.s, SessionKey(se.role), acct)
}

// Clear removes the session pointer.
func (se Session) Clear() error {
	return se.s.Delete(SessionKey(se.role))
}
