// Package dashboard implements the admin dashboard flow: a session-scoped
// authorization gate, a parallel aggregation of the user and booking lists
// with an all-or-nothing commit, and a delete mutation that reconciles the
// local view without a re-fetch.
package dashboard

import (
	"context"
	"net/http"
)

// Dashboard wires the gate, fetcher and view state over one session
type Dashboard struct {
	client  *Client
	gate    *Gate
	fetcher *Fetcher
	state   *ViewState
	session *Session
}

// New creates a Dashboard for the given session. httpClient may be nil.
func New(baseURL string, sess *Session, httpClient *http.Client) *Dashboard {
	var token string
	if sess != nil {
		token = sess.Token
	}
	client := NewClient(baseURL, token, httpClient)
	state := NewViewState()
	return &Dashboard{
		client:  client,
		gate:    NewGate(client),
		fetcher: NewFetcher(client, state),
		state:   state,
		session: sess,
	}
}

// State exposes the view state for rendering
func (d *Dashboard) State() *ViewState {
	return d.state
}

// GateState exposes the gate's last decision
func (d *Dashboard) GateState() GateState {
	return d.gate.State()
}

// Open runs the gate and, only on authorization, the aggregation fetch.
// A denied gate leaves the view state untouched and empty.
func (d *Dashboard) Open(ctx context.Context) error {
	if d.gate.Verify(ctx, d.session) != StateAuthorized {
		return ErrAccessDenied
	}
	return d.fetcher.Load(ctx)
}

// DeleteUser deletes the user on the server and, on success, removes it
// from the local view state by id. Bookings referencing the user keep their
// (now possibly stale) denormalized name until the next full reload.
func (d *Dashboard) DeleteUser(ctx context.Context, id string) (string, error) {
	message, err := d.client.DeleteUser(ctx, id)
	if err != nil {
		return "", err
	}
	d.state.RemoveUser(id)
	return message, nil
}
