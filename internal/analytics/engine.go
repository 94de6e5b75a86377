// Package analytics derives streaks, completion rates and category progress
// from goal, todo and finance records.
//
// Every function in this package is pure: records are read, never
// modified, and "today" is always an explicit argument. Engine exists only
// to supply that argument from an injectable clock.
package analytics

import (
	"math"
	"time"
)

// StreakWindowDays is the furthest GoalStreak and TodoStreak look back.
// The window is fixed: a 45-day run reports 30.
const StreakWindowDays = 30

// Clock returns the current instant
type Clock func() time.Time

// Engine resolves the reference date for analytics calls
type Engine struct {
	clock Clock
	loc   *time.Location
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides time.Now
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLocation sets the zone "today" is evaluated in
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewEngine creates an engine using the system clock in the local zone
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock: time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the clock's current time in the engine's location
func (e *Engine) Now() time.Time {
	return e.clock().In(e.loc)
}

// Reference returns ref, or Now when ref is the zero time
func (e *Engine) Reference(ref time.Time) time.Time {
	if ref.IsZero() {
		return e.Now()
	}
	return ref
}

// Location returns the zone used for "today"
func (e *Engine) Location() *time.Location {
	return e.loc
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// roundHalfUp rounds to the nearest integer with .5 going up. Non-finite
// input yields 0.
func roundHalfUp(x float64) int {
	if !finite(x) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

// roundTo1 rounds half-up to one decimal place
func roundTo1(x float64) float64 {
	if !finite(x) {
		return 0
	}
	return math.Floor(x*10+0.5) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// percent returns part/whole*100, or 0 when whole is 0
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
