package dashboard

import "court_booking/internal/model"

// ViewState is the in-memory state backing the rendered dashboard. It is
// mutated only by the owning flow's handlers; there are no concurrent
// writers.
type ViewState struct {
	Users    []model.User
	Bookings []model.Booking
	loaded   bool
}

// NewViewState creates an empty ViewState
func NewViewState() *ViewState {
	return &ViewState{}
}

// Commit replaces both collections in one step. The view never shows a user
// list from one refresh paired with a booking list from another; callers
// commit only after both responses have parsed.
func (s *ViewState) Commit(users []model.User, bookings []model.Booking) {
	s.Users = users
	s.Bookings = bookings
	s.loaded = true
}

// Loaded reports whether a full aggregation has ever been committed
func (s *ViewState) Loaded() bool {
	return s.loaded
}

// RemoveUser drops the entry with the given id, preserving the order and
// content of every other entry. Bookings are deliberately untouched: a
// stale denormalized name is accepted until the next full reload.
func (s *ViewState) RemoveUser(id string) {
	filtered := s.Users[:0]
	for _, u := range s.Users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	s.Users = filtered
}
