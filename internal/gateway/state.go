package gateway

import (
	"sync"
	"time"
)

// State is the limiter and cool-down bookkeeping shared by every caller of one
// Gateway. It is safe for concurrent use.
type State struct {
	mu  sync.Mutex
	now func() time.Time

	limit       int
	windowStart time.Time
	count       int

	cooldown      time.Duration
	cooldownUntil time.Time
}

// NewState returns a State allowing limit calls per rolling minute. A non-positive
// limit disables the ceiling. now may be nil to use the wall clock.
func NewState(limit int, cooldown time.Duration, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{now: now, limit: limit, cooldown: cooldown}
}

// Acquire reserves one call. It fails with ErrCoolingDown while a quota
// cool-down is active and with ErrRateLimited once the window is full.
func (s *State) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Before(s.cooldownUntil) {
		return ErrCoolingDown
	}
	if s.limit <= 0 {
		return nil
	}
	if s.windowStart.IsZero() || now.Sub(s.windowStart) >= time.Minute {
		s.windowStart = now
		s.count = 0
	}
	if s.count >= s.limit {
		return ErrRateLimited
	}
	s.count++
	return nil
}

// Trip starts a cool-down after the provider reported a quota error.
func (s *State) Trip() {
	s.mu.Lock()
	s.cooldownUntil = s.now().Add(s.cooldown)
	s.mu.Unlock()
}

func (s *State) CoolingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.cooldownUntil)
}

// Remaining reports how many calls are left in the current window.
func (s *State) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit <= 0 {
		return -1
	}
	if s.windowStart.IsZero() || s.now().Sub(s.windowStart) >= time.Minute {
		return s.limit
	}
	return s.limit - s.count
}
