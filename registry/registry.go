package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Token authorizes changes to a registered value. Tokens are opaque and
// unique per holder; the zero Token never matches a registration.
type Token struct {
	id string
}

// NewToken returns a fresh owner token.
func NewToken() Token {
	return Token{id: uuid.NewString()}
}

// Registry is the accessor contract for process-wide shared state.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Get returns the value registered under key.
	Get(key string) (any, bool)

	// Register stores value under key on behalf of owner. When the key is
	// already occupied it succeeds only if allowOverride is set. It
	// reports whether the value was stored.
	Register(key string, value any, owner Token, allowOverride bool) bool

	// Unregister removes the value under key if owner matches the
	// recorded registration owner; otherwise it is a no-op.
	Unregister(key string, owner Token)
}

type entry struct {
	value any
	owner Token
}

type inMemory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty in-memory registry.
func New() Registry {
	return &inMemory{entries: make(map[string]entry)}
}

var defaultRegistry = New()

// Default returns the process-wide registry shared by all diagkit packages.
func Default() Registry {
	return defaultRegistry
}

func (r *inMemory) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (r *inMemory) Register(key string, value any, owner Token, allowOverride bool) bool {
	if owner == (Token{}) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists && !allowOverride {
		return false
	}
	r.entries[key] = entry{value: value, owner: owner}
	return true
}

func (r *inMemory) Unregister(key string, owner Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok || e.owner != owner {
		return
	}
	delete(r.entries, key)
}
