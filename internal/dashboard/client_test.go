package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"court_booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","token":"tok123","user":{"id":"a1","name":"Root","email":"root@example.com","role":"admin"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", nil)
	sess, err := client.Login(context.Background(), "root@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok123", sess.Token)
	assert.Equal(t, "a1", sess.Claim.ID)
	assert.Equal(t, model.RoleAdmin, sess.Claim.Role)
	assert.True(t, sess.IsAdmin())
}

func TestClientLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid email or password"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", nil)
	sess, err := client.Login(context.Background(), "root@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestClientDeleteUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/users/u1", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"User deleted successfully"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin-token", nil)
	msg, err := client.DeleteUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", msg)
}

func TestClientDeleteUser_ErrorBodySurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin-token", nil)
	_, err := client.DeleteUser(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, "user not found", err.Error())
}

func TestClientDeleteUser_NonJSONBody(t *testing.T) {
	// A proxy error page instead of an API response must become a protocol
	// error, never a silent success or a bare status failure.
	htmlBody := "<html><body><h1>502 Bad Gateway</h1>" + strings.Repeat("x", 300) + "</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(htmlBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin-token", nil)
	_, err := client.DeleteUser(context.Background(), "u1")

	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Len(t, protoErr.Excerpt, 100)
	assert.Equal(t, htmlBody[:100], protoErr.Excerpt)
	assert.Contains(t, err.Error(), "response is not JSON")
}

func TestClientListUsers_DenialStatuses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"denied"}`))
		}))

		client := NewClient(server.URL, "bad-token", nil)
		_, err := client.ListUsers(context.Background())
		assert.ErrorIs(t, err, ErrAccessDenied, "status %d", status)

		server.Close()
	}
}

func TestClientPing_CacheBypassHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		w.Write([]byte(`{"message":"pong"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin-token", nil)
	assert.NoError(t, client.Ping(context.Background()))
}
