package llm

import (
	"fmt"
	"sync"
	"time"
)

// KeyRing holds the rotating set of API credentials. Rotation state is
// explicit and injectable rather than a package-level singleton, so
// concurrent requests share one consistent view of which key is current.
type KeyRing struct {
	mu          sync.Mutex
	keys        []string
	current     int
	lastRotated time.Time
}

// NewKeyRing creates a key ring over the given credentials.
func NewKeyRing(keys []string) (*KeyRing, error) {
	cleaned := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &KeyRing{keys: cleaned}, nil
}

// Len returns the number of credentials in the ring.
func (r *KeyRing) Len() int {
	return len(r.keys)
}

// Current returns the active credential and its position. The position is
// passed back to Invalidate so two goroutines failing on the same key only
// advance the ring once.
func (r *KeyRing) Current() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[r.current], r.current
}

// Invalidate marks the credential at pos as failed and advances to the next
// one. If another caller already rotated past pos, the ring is left alone.
func (r *KeyRing) Invalidate(pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != pos {
		return
	}
	r.current = (r.current + 1) % len(r.keys)
	r.lastRotated = time.Now()
}

// LastRotated reports when the ring last advanced (zero if never).
func (r *KeyRing) LastRotated() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRotated
}
