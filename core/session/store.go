package session

import "sync"

// Session is the current client session: a role, or absent when Role is empty.
type Session struct {
	Role Role `json:"role,omitempty"`
}

// Present reports whether the session holds a valid role.
func (s Session) Present() bool { return s.Role.Valid() }

// Store persists the role flag of a single client.
type Store interface {
	// Set stores role, replacing any previous one. Unknown roles are rejected with ErrInvalidRole.
	Set(role Role) error
	// Get returns the stored role; false when absent.
	Get() (Role, bool)
	// Clear removes the stored role. Clearing an absent role is a no-op.
	Clear() error
}

// Load reads the Session held by st.
func Load(st Store) Session {
	if role, ok := st.Get(); ok {
		return Session{Role: role}
	}
	return Session{}
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	role Role
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return new(MemoryStore)
}

func (st *MemoryStore) Set(role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	st.mu.Lock()
	st.role = role
	st.mu.Unlock()
	return nil
}

func (st *MemoryStore) Get() (Role, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.role, st.role != ""
}

func (st *MemoryStore) Clear() error {
	st.mu.Lock()
	st.role = ""
	st.mu.Unlock()
	return nil
}
