package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"court_booking/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestGateVerify_NonAdminClaimDeniedWithoutProbe(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gate := NewGate(NewClient(server.URL, "some-token", nil))
	sess := &Session{Token: "some-token", Claim: Claim{ID: "u1", Role: model.RoleUser}}

	state := gate.Verify(context.Background(), sess)

	assert.Equal(t, StateDenied, state)
	assert.EqualValues(t, 0, hits.Load(), "non-admin claim must be denied without any server request")
}

func TestGateVerify_NilSessionDenied(t *testing.T) {
	gate := NewGate(NewClient("http://unused.invalid", "", nil))

	state := gate.Verify(context.Background(), nil)

	assert.Equal(t, StateDenied, state)
}

func TestGateVerify_ServerDenies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	gate := NewGate(NewClient(server.URL, "forged-token", nil))
	sess := &Session{Token: "forged-token", Claim: Claim{ID: "u1", Role: model.RoleAdmin}}

	// A locally asserted admin role is not enough; the server's answer wins.
	state := gate.Verify(context.Background(), sess)

	assert.Equal(t, StateDenied, state)
	assert.Equal(t, StateDenied, gate.State())
}

func TestGateVerify_ServerAuthorizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/ping", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"pong"}`))
	}))
	defer server.Close()

	gate := NewGate(NewClient(server.URL, "admin-token", nil))
	sess := &Session{Token: "admin-token", Claim: Claim{ID: "a1", Role: model.RoleAdmin}}

	state := gate.Verify(context.Background(), sess)

	assert.Equal(t, StateAuthorized, state)
}

func TestGateVerify_TransportFailureDenies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	gate := NewGate(NewClient(server.URL, "admin-token", nil))
	sess := &Session{Token: "admin-token", Claim: Claim{ID: "a1", Role: model.RoleAdmin}}

	state := gate.Verify(context.Background(), sess)

	assert.Equal(t, StateDenied, state)
}
