package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"court_booking/internal/model"
)

// Credential store keys: one opaque token string and one JSON-serialized
// claim, mirroring the two entries a browser client keeps in local storage.
const (
	credTokenKey = "auth:token"
	credUserKey  = "auth:user"
)

// Claim is the decoded user claim held alongside the token. The role field
// is a UX hint only; the server re-validates it on every admin request.
type Claim struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the explicit client-held credential: created at login,
// destroyed at logout, passed into every component that needs it.
type Session struct {
	Token string
	Claim Claim
}

// IsAdmin reports whether the local, untrusted claim asserts the admin role
func (s *Session) IsAdmin() bool {
	return s != nil && s.Token != "" && s.Claim.Role == model.RoleAdmin
}

// CredentialStore persists the two session entries between runs
type CredentialStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore is a CredentialStore backed by a JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode credential file: %w", err)
	}
	return entries, nil
}

func (f *FileStore) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

func (f *FileStore) Get(key string) (string, bool, error) {
	entries, err := f.load()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (f *FileStore) Set(key, value string) error {
	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.save(entries)
}

func (f *FileStore) Delete(key string) error {
	entries, err := f.load()
	if err != nil {
		return err
	}
	delete(entries, key)
	return f.save(entries)
}

// LoadSession reads the session from the store. It returns nil when either
// entry is missing or the claim does not decode; an absent session is not
// an error.
func LoadSession(store CredentialStore) (*Session, error) {
	token, ok, err := store.Get(credTokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	rawClaim, ok, err := store.Get(credUserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var claim Claim
	if err := json.Unmarshal([]byte(rawClaim), &claim); err != nil {
		return nil, nil // undecodable claim is treated as no session
	}

	return &Session{Token: token, Claim: claim}, nil
}

// SaveSession writes both session entries to the store
func SaveSession(store CredentialStore, sess *Session) error {
	rawClaim, err := json.Marshal(sess.Claim)
	if err != nil {
		return fmt.Errorf("failed to encode claim: %w", err)
	}
	if err := store.Set(credTokenKey, sess.Token); err != nil {
		return err
	}
	return store.Set(credUserKey, string(rawClaim))
}

// ClearSession removes both session entries; this is the only path that
// destroys credentials.
func ClearSession(store CredentialStore) error {
	if err := store.Delete(credTokenKey); err != nil {
		return err
	}
	return store.Delete(credUserKey)
}
