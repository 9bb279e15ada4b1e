package session

import "sync"

// Session is the client-held record of the current authenticated identity.
// All producers (login, register, guest signup) normalize into this one shape.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	IsStaff      bool   `json:"is_staff"`
	IsGuest      bool   `json:"is_guest"`
}

// LoggedIn reports whether the session carries an access token. A session
// without one is treated the same as no session at all.
func (s Session) LoggedIn() bool {
	return s.AccessToken != ""
}

// Manager owns the current session for the lifetime of the process. The
// Store is its persistence mirror; nothing else writes to it. Mutations
// are last-write-wins across concurrent request completions.
type Manager struct {
	mu      sync.RWMutex
	store   *Store
	current *Session
}

// NewManager creates a manager backed by store
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Init loads persisted state into memory. An unreadable session mirror is
// treated as logged out rather than an error; a mirror without tokens falls
// back to the token files.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.store.Session()
	if err != nil || sess == nil {
		access, refresh := m.store.Tokens()
		if access == "" {
			m.current = nil
			return
		}
		sess = &Session{AccessToken: access, RefreshToken: refresh}
	}

	if sess.AccessToken == "" {
		sess.AccessToken, sess.RefreshToken = m.store.Tokens()
	}

	if !sess.LoggedIn() {
		m.current = nil
		return
	}
	m.current = sess
}

// Current returns the active session, false when logged out
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil || !m.current.LoggedIn() {
		return Session{}, false
	}
	return *m.current, true
}

// AccessToken returns the current access token, empty when logged out
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.AccessToken
}

// RefreshToken returns the current refresh token, empty when logged out
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.RefreshToken
}

// Set makes sess the active session and persists it synchronously
func (m *Manager) Set(sess Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetTokens(sess.AccessToken, sess.RefreshToken); err != nil {
		return err
	}
	if err := m.store.SaveSession(&sess); err != nil {
		return err
	}

	m.current = &sess
	return nil
}

// SetAccessToken swaps in a freshly minted access token after a refresh
func (m *Manager) SetAccessToken(access string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetAccessToken(access); err != nil {
		return err
	}

	if m.current != nil {
		m.current.AccessToken = access
		return m.store.SaveSession(m.current)
	}
	return nil
}

// Clear logs out: wipes both the in-memory session and the store
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	return m.store.Clear()
}
