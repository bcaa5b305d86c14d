package clock

import (
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

type Clock interface {
	Now() time.Time
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// System reads the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

func New(tz string) System {
	return System{loc: Location(tz)}
}

func (s System) Now() time.Time {
	if s.loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(s.loc)
}

// Manual is a settable clock for tests.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
