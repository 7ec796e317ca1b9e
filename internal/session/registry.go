package session

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultKey is the session key the console surface uses; it maps to
// the well-known history path.
const DefaultKey = "default"

// Registry hands out one Store per session key, so concurrent callers
// on different keys never share conversational state. The original web
// build kept a single process-wide session behind a singleton; the
// registry replaces that with explicit per-key isolation.
type Registry struct {
	mu           sync.Mutex
	stores       map[string]*Store
	defaultModel string
}

func NewRegistry(defaultModel string) *Registry {
	return &Registry{
		stores:       make(map[string]*Store),
		defaultModel: defaultModel,
	}
}

// GetOrCreate returns the store bound to key, creating it on first use.
// An empty key mints a fresh one; callers surface the resolved key back
// to the client so follow-up requests land on the same session.
func (r *Registry) GetOrCreate(key string) (*Store, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key == "" {
		key = uuid.NewString()
	}
	store, ok := r.stores[key]
	if !ok {
		store = NewStore(r.defaultModel)
		r.stores[key] = store
	}
	return store, key
}

// Get returns the store bound to key, or nil when the key is unknown.
func (r *Registry) Get(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stores[key]
}
