package fixture

import (
	"errors"

	"github.com/katalvlaran/waypath/waypoint"
)

// Tolerance is the absolute difference under which a computed time matches
// its expected value.
const Tolerance = 0.001

const (
	inputToken  = "sample_input"
	outputToken = "sample_output"
)

var (
	// ErrMalformedInput indicates a token that cannot be parsed.
	ErrMalformedInput = errors.New("fixture: malformed input")
	// ErrTruncatedCase indicates the input ended in the middle of a case.
	ErrTruncatedCase = errors.New("fixture: truncated case")
	// ErrNegativeCount indicates a negative waypoint count.
	ErrNegativeCount = errors.New("fixture: negative waypoint count")
)

// Case is one augmented waypoint sequence and its expected time, if known.
type Case struct {
	Waypoints   []waypoint.Waypoint
	Expected    float64
	HasExpected bool
}

// File groups the cases read from one input file.
type File struct {
	Path  string
	Cases []Case
}

// Outcome is the result of checking one case.
type Outcome struct {
	Index    int
	Got      float64
	Expected float64
	Diff     float64
	Pass     bool
	Path     []int
}
