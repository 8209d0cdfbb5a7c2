package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"court_booking/internal/model"
)

// Fetcher aggregates the user and booking lists into a ViewState. Both
// requests run concurrently and the flow waits for both to settle; the
// state is committed from both results or from neither.
type Fetcher struct {
	client *Client
	state  *ViewState
}

// NewFetcher creates a Fetcher committing into the given state
func NewFetcher(client *Client, state *ViewState) *Fetcher {
	return &Fetcher{client: client, state: state}
}

// Load fetches both collections in parallel and commits them atomically.
// If either response is an authorization denial the whole aggregation
// aborts with ErrAccessDenied, even when the other request succeeded; any
// other failure aborts with a generic load error. Nothing is committed on
// any failure path. No timeout is imposed here — callers bound latency via
// the context.
func (f *Fetcher) Load(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		users    []model.User
		bookings []model.Booking
		usersErr error
		bookErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, usersErr = f.client.ListUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		bookings, bookErr = f.client.ListBookings(ctx)
	}()
	wg.Wait()

	// Auth denial takes precedence over any other failure.
	if errors.Is(usersErr, ErrAccessDenied) || errors.Is(bookErr, ErrAccessDenied) {
		return ErrAccessDenied
	}
	if usersErr != nil {
		return fmt.Errorf("failed to load users: %w", usersErr)
	}
	if bookErr != nil {
		return fmt.Errorf("failed to load bookings: %w", bookErr)
	}

	// Admins are not user-manageable targets; drop them from the displayed
	// set.
	displayed := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleAdmin {
			displayed = append(displayed, u)
		}
	}

	f.state.Commit(displayed, bookings)
	return nil
}
