package dashboard

import (
	"context"

	"github.com/sirupsen/logrus"
)

// GateState is the authorization gate's state machine:
// Unverified -> Verifying -> {Authorized, Denied}.
type GateState int

const (
	StateUnverified GateState = iota
	StateVerifying
	StateAuthorized
	StateDenied
)

func (s GateState) String() string {
	switch s {
	case StateUnverified:
		return "unverified"
	case StateVerifying:
		return "verifying"
	case StateAuthorized:
		return "authorized"
	case StateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Gate decides whether the dashboard may fetch admin data. The local claim
// check is a UX shortcut only: it saves a round trip when the user clearly
// isn't an admin, but authorization is only ever granted by the server's
// answer to the probe.
type Gate struct {
	client *Client
	state  GateState
	log    *logrus.Entry
}

// NewGate creates a Gate over the given client
func NewGate(client *Client) *Gate {
	return &Gate{
		client: client,
		state:  StateUnverified,
		log:    logrus.WithField("component", "auth_gate"),
	}
}

// State returns the gate's current state
func (g *Gate) State() GateState {
	return g.state
}

// Verify runs the gate against the given session. A session without a token
// or without an admin role claim is denied immediately, without contacting
// the server. Otherwise one probe request decides the outcome; any failure,
// including transport failure, denies. Credentials are never cleared here —
// only explicit logout does that.
func (g *Gate) Verify(ctx context.Context, sess *Session) GateState {
	g.state = StateUnverified

	if !sess.IsAdmin() {
		g.log.Debug("local claim is not admin, denying without probe")
		g.state = StateDenied
		return g.state
	}

	g.state = StateVerifying
	if err := g.client.Ping(ctx); err != nil {
		g.log.WithError(err).Debug("server denied admin probe")
		g.state = StateDenied
		return g.state
	}

	g.state = StateAuthorized
	return g.state
}
