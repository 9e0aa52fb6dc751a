// Package auth holds the process-wide bearer credential and gates
// credential-requiring operations before any network activity.
package auth

import (
	"strings"
	"sync"

	"github.com/alnah/go-lingua/internal/apierr"
)

// Gate is the single owner of the bearer credential. Facades consult it
// before entering the retry loop, so a missing credential fails fast with a
// feature-specific message and never costs a network round trip.
//
// The credential is a last-write-wins value mutated only by explicit
// login/logout; the lock exists so concurrent readers never observe a torn
// value.
type Gate struct {
	mu    sync.RWMutex
	token string
}

// NewGate returns a Gate holding the given token. The token is trimmed; an
// empty or whitespace-only value means no credential.
func NewGate(token string) *Gate {
	g := &Gate{}
	g.SetCredential(token)
	return g
}

// SetCredential replaces the current credential. Trims whitespace; an empty
// result clears the credential (logout).
func (g *Gate) SetCredential(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// HasCredential reports whether a credential is set.
func (g *Gate) HasCredential() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token != ""
}

// Token returns the current credential, or "" when signed out.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Require returns an *apierr.AuthError naming feature when no credential is
// set, nil otherwise. feature reads as the object of "sign in to ...",
// e.g. "use the power-up shop".
func (g *Gate) Require(feature string) error {
	if g.HasCredential() {
		return nil
	}
	return &apierr.AuthError{Feature: feature}
}
