package collections

import (
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/pkg/models"
)

// Interviews is the interview_history collection. Records carry generated
// ids and every mutation matches on id, never on list position, so
// reordering the list cannot corrupt the wrong record.
type Interviews struct {
	s store.Store
}

// NewInterviews returns the accessor for interview_history.
func NewInterviews(s store.Store) Interviews {
	return Interviews{s: s}
}

// List returns every interview record.
func (iv Interviews) List() []models.Interview {
	return store.Read(iv.s, KeyInterviews, []models.Interview{})
}

// Find returns the interview with the given id.
func (iv Interviews) Find(id string) (models.Interview, bool) {
	for _, it := range iv.List() {
		if it.ID == id {
			return it, true
		}
	}
	return models.Interview{}, false
}

// Upsert replaces the interview with a matching id, or appends it.
func (iv Interviews) Upsert(it models.Interview) error {
	list := iv.List()
	for i := range list {
		if list[i].ID == it.ID {
			list[i] = it
			return iv.Replace(list)
		}
	}
	return iv.Replace(append(list, it))
}

// Replace overwrites the whole collection.
func (iv Interviews) Replace(list []models.Interview) error {
	return store.Write(iv.s, KeyInterviews, list)
}
