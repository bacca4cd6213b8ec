// Package session tracks interactive viewer sessions (local or SSH) and
// decouples run persistence from the transport layer.
package session

import (
	"sort"
	"sync"
	"time"
)

// ID uniquely identifies a viewer session (e.g., an SSH connection).
type ID string

// Local is the session label used by the standalone CLI.
const Local ID = "local"

// Info describes one active session.
type Info struct {
	ID      ID
	User    string
	Addr    string
	Started time.Time
}

// RunData is the transport-neutral record of a finished run.
// The serve and CLI layers hand it to a RunSaver without depending on the
// storage package.
type RunData struct {
	Problem        string
	Algorithm      string
	Status         string
	Steps          int
	NodesExpanded  int
	MaxDepth       int
	SolutionCost   float64
	HasCost        bool
	SolutionLength int
	DurationMS     int64
	Session        string
}

// RunSaver persists finished runs. Implemented by the storage layer.
type RunSaver interface {
	SaveSessionRun(data RunData) error
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]Info
}

// NewRegistry creates a new session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[ID]Info),
	}
}

// Register adds a session to the registry.
func (r *Registry) Register(info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[info.ID] = info
}

// Unregister removes a session from the registry.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the active sessions ordered by start time.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Started.Before(out[j].Started)
	})
	return out
}
