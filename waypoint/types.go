// Package waypoint defines the waypoint value type, search options, results
// and sentinel errors shared by the search and the validation helpers.
package waypoint

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by Validate or raised (via panic) by invalid options.
var (
	// ErrTooFewWaypoints indicates the sequence lacks the start/end pair.
	ErrTooFewWaypoints = errors.New("waypoint: sequence must contain at least a start and an end waypoint")

	// ErrNegativeCoordinate indicates a waypoint with x < 0 or y < 0.
	ErrNegativeCoordinate = errors.New("waypoint: coordinates must be non-negative")

	// ErrNegativePenalty indicates a waypoint with a negative skip penalty.
	ErrNegativePenalty = errors.New("waypoint: penalty must be non-negative")

	// ErrBadSpeed indicates WithSpeed received a non-positive value.
	ErrBadSpeed = errors.New("waypoint: speed must be positive")

	// ErrBadDwellTime indicates WithDwellTime received a negative value.
	ErrBadDwellTime = errors.New("waypoint: dwell time must be non-negative")
)

const (
	// DefaultSpeed is the agent speed in distance units per second.
	DefaultSpeed = 2.0

	// DefaultDwellTime is the fixed per-stop delay in seconds.
	DefaultDwellTime = 10.0
)

var (
	// Origin is the synthetic start waypoint. It is never skipped.
	Origin = Waypoint{X: 0, Y: 0, Penalty: 0}

	// Destination is the synthetic end waypoint. It is never skipped.
	Destination = Waypoint{X: 100, Y: 100, Penalty: 0}
)

// Waypoint is an immutable point the agent may visit. Penalty is charged
// when the waypoint is skipped.
type Waypoint struct {
	X, Y    int
	Penalty float64
}

// Point returns the waypoint position as an orb.Point.
func (w Waypoint) Point() orb.Point {
	return orb.Point{float64(w.X), float64(w.Y)}
}

// Options configures the cost model of the search.
//
// Speed     – distance units per second; must be > 0. Default DefaultSpeed.
// DwellTime – seconds added per hop; must be ≥ 0. Default DefaultDwellTime.
type Options struct {
	Speed     float64
	DwellTime float64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the cost model used by FindMinimumTime when no
// options are given.
func DefaultOptions() Options {
	return Options{
		Speed:     DefaultSpeed,
		DwellTime: DefaultDwellTime,
	}
}

// WithSpeed overrides the travel speed. Panics with ErrBadSpeed if v ≤ 0.
func WithSpeed(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			panic(ErrBadSpeed.Error())
		}
		o.Speed = v
	}
}

// WithDwellTime overrides the per-stop delay. Panics with ErrBadDwellTime if d < 0.
func WithDwellTime(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDwellTime.Error())
		}
		o.DwellTime = d
	}
}

// Result is the outcome of a single Search.
type Result struct {
	// Time is the total traversal time: travel, dwell and skip penalties.
	Time float64

	// Path is the recorded optimal path as indices into the input sequence,
	// starting at 0 and ending at len(wps)-1. Nil if the end was never finalized.
	Path []int

	// Reached reports whether the end waypoint was finalized.
	Reached bool

	// Expanded is the number of states finalized (popped and not stale).
	Expanded int
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
