package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Notifications is a role's notification feed. Append-only apart from the
// read flag, which is monotonic: once true it never reverts.
type Notifications struct {
	s   store.Store
	key string
}

// NewNotifications returns the feed accessor for a role.
func NewNotifications(s store.Store, role models.Role) Notifications {
	return Notifications{s: s, key: NotificationsKey(role)}
}

// Key returns the underlying collection key, used for fan-out.
func (n Notifications) Key() string {
	return n.key
}

// List returns the feed, newest first.
func (n Notifications) List() []models.Notification {
	return store.Read(n.s, n.key, []models.Notification{})
}

// Unread counts notifications not yet read.
func (n Notifications) Unread() int {
	count := 0
	for _, item := range n.List() {
		if !item.Read {
			count++
		}
	}
	return count
}

// Prepend inserts item at the head of the feed.
func (n Notifications) Prepend(item models.Notification) error {
	list := n.List()
	return n.Replace(append([]models.Notification{item}, list...))
}

// MarkRead flips a single notification to read. Marking an already-read or
// missing notification is a no-op.
func (n Notifications) MarkRead(id string) error {
	list := n.List()
	changed := false
	for i := range list {
		if list[i].ID == id && !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return n.Replace(list)
}

// MarkAllRead flips every notification to read.
func (n Notifications) MarkAllRead() error {
	list := n.List()
	for i := range list {
		list[i].Read = true
	}
	return n.Replace(list)
}

// Replace overwrites the whole feed.
func (n Notifications) Replace(list []models.Notification) error {
	return store.Write(n.s, n.key, list)
}
