// Package shell holds the dashboard-shell concerns: the current display role,
// the role-keyed navigation registry, and the logo gesture detector. Role
// switching is purely a presentation toggle; it carries no security meaning.
package shell

import (
	"fmt"
	"sync"
)

// Role is the dashboard persona being rendered.
type Role string

const (
	RolePublic     Role = "PUBLIC"
	RoleFranchisee Role = "FRANCHISEE"
	RoleAdmin      Role = "ADMIN"
	RoleOperations Role = "OPERATIONS"
	RoleAffiliate  Role = "AFFILIATE"
	RoleSupervisor Role = "SUPERVISOR"
)

// Roles lists every switchable persona.
var Roles = []Role{RolePublic, RoleFranchisee, RoleAdmin, RoleOperations, RoleAffiliate, RoleSupervisor}

// ParseRole validates a role string from the outside world.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Switcher is the single owner of the current role. Components that used to
// flip a shared global (header, sidebar) instead go through here and observe
// changes over subscription channels.
type Switcher struct {
	mu      sync.RWMutex
	current Role
	subs    map[chan Role]struct{}
}

// NewSwitcher starts in the public (logged-out) view.
func NewSwitcher() *Switcher {
	return &Switcher{
		current: RolePublic,
		subs:    make(map[chan Role]struct{}),
	}
}

// Current returns the active role.
func (s *Switcher) Current() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Switch changes the active role and notifies subscribers. Notification is
// non-blocking: a subscriber that stopped draining misses updates rather than
// wedging the switcher.
func (s *Switcher) Switch(r Role) error {
	if _, err := ParseRole(string(r)); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current == r {
		s.mu.Unlock()
		return nil
	}
	s.current = r
	subs := make([]chan Role, 0, len(s.subs))
	for ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- r:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of role changes and a cancel func.
func (s *Switcher) Subscribe() (<-chan Role, func()) {
	ch := make(chan Role, 4)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}
