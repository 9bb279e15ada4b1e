package session

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
)

// Storage keys. Each key is one file under the state directory.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
	sessionKey      = "auth"
)

// Store persists the two tokens and the session mirror on disk. It is a
// passive mirror: the Manager is the only writer. A missing or unreadable
// state directory reads back as empty state, never as an error.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Tokens returns the persisted access and refresh tokens
func (s *Store) Tokens() (access, refresh string) {
	return s.read(accessTokenKey), s.read(refreshTokenKey)
}

// SetTokens persists both tokens
func (s *Store) SetTokens(access, refresh string) error {
	if err := s.write(accessTokenKey, access); err != nil {
		return err
	}
	return s.write(refreshTokenKey, refresh)
}

// SetAccessToken persists a new access token, leaving the refresh token alone
func (s *Store) SetAccessToken(access string) error {
	return s.write(accessTokenKey, access)
}

// Session loads the persisted session mirror, nil when absent
func (s *Store) Session() (*Session, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No session stored yet
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// SaveSession persists the session mirror
func (s *Store) SaveSession(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return s.writeBytes(sessionKey, data)
}

// Clear removes all persisted state
func (s *Store) Clear() error {
	var firstErr error
	for _, key := range []string{accessTokenKey, refreshTokenKey, sessionKey} {
		err := os.Remove(filepath.Join(s.dir, key))
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Store) read(key string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) write(key, value string) error {
	return s.writeBytes(key, []byte(value))
}

func (s *Store) writeBytes(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	// Owner read/write only
	return os.WriteFile(filepath.Join(s.dir, key), data, 0600)
}
