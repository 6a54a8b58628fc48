package fixture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/waypath/waypoint"
)

// maxPrealloc bounds the capacity reserved from a case count.
const maxPrealloc = 1024

// tokens wraps a word scanner and tracks the token position for errors.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next token, or ok=false at EOF.
func (t *tokens) next() (string, bool, error) {
	if !t.sc.Scan() {
		return "", false, t.sc.Err()
	}
	t.pos++

	return t.sc.Text(), true, nil
}

func (t *tokens) nextInt() (int, bool, error) {
	tok, ok, err := t.next()
	if !ok || err != nil {
		return 0, ok, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, true, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedInput, t.pos, tok)
	}

	return v, true, nil
}

func (t *tokens) nextFloat() (float64, bool, error) {
	tok, ok, err := t.next()
	if !ok || err != nil {
		return 0, ok, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: token %d %q is not a number", ErrMalformedInput, t.pos, tok)
	}

	return v, true, nil
}

// ParseCases reads count-prefixed waypoint cases until a zero count or EOF.
// Each case is augmented with the synthetic start and end waypoints.
func ParseCases(r io.Reader) ([]Case, error) {
	tk := newTokens(r)
	var cases []Case
	for {
		k, ok, err := tk.nextInt()
		if err != nil {
			return nil, err
		}
		if !ok || k == 0 {
			return cases, nil
		}
		if k < 0 {
			return nil, fmt.Errorf("%w: case %d count=%d", ErrNegativeCount, len(cases), k)
		}

		// The count is untrusted; grow past the cap only as triples arrive.
		raw := make([]waypoint.Waypoint, 0, min(k, maxPrealloc))
		for j := 0; j < k; j++ {
			w, err := readWaypoint(tk)
			if err != nil {
				return nil, fmt.Errorf("case %d waypoint %d: %w", len(cases), j, err)
			}
			raw = append(raw, w)
		}
		cases = append(cases, Case{Waypoints: waypoint.Augment(raw)})
	}
}

func readWaypoint(tk *tokens) (waypoint.Waypoint, error) {
	var w waypoint.Waypoint
	x, ok, err := tk.nextInt()
	if err == nil && !ok {
		err = ErrTruncatedCase
	}
	if err != nil {
		return w, err
	}
	y, ok, err := tk.nextInt()
	if err == nil && !ok {
		err = ErrTruncatedCase
	}
	if err != nil {
		return w, err
	}
	p, ok, err := tk.nextFloat()
	if err == nil && !ok {
		err = ErrTruncatedCase
	}
	if err != nil {
		return w, err
	}

	return waypoint.Waypoint{X: x, Y: y, Penalty: p}, nil
}

// ParseExpected reads whitespace-separated expected times until EOF.
func ParseExpected(r io.Reader) ([]float64, error) {
	tk := newTokens(r)
	var out []float64
	for {
		v, ok, err := tk.nextFloat()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
