package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cs-au-dk/stride/interval"
	"github.com/cs-au-dk/stride/utils/slices"
)

// Atoms for the symbolic infinities in interval literals.
const (
	atomInfinity    = ":infinity"
	atomNegInfinity = ":neg_infinity"
)

// Parse reads an interval literal:
//
//	interval = left bound "," bound right [ "//" step ]
//	left     = "[" | "("
//	right    = "]" | ")"
//	bound    = float | ":infinity" | ":neg_infinity"
//	step     = non-zero float
//
// Floats take the usual decimal forms, signed and with optional
// exponent. Whitespace around tokens is tolerated. Every failure wraps
// a ConstructionError: grammar violations carry kind MALFORMED, while
// bound order and step violations surface with the kinds the interval
// constructors assign, so errors.As recovers the specific constraint
// either way.
func Parse(s string) (interval.Interval, error) {
	lit := strings.TrimSpace(s)

	var stepLit string
	stepped := false
	if at := strings.Index(lit, "//"); at >= 0 {
		lit, stepLit = strings.TrimSpace(lit[:at]), strings.TrimSpace(lit[at+2:])
		stepped = true
	}

	if len(lit) < 2 {
		return interval.Interval{}, malformed(s, "literal too short")
	}
	if !slices.OneOf(lit[0], '[', '(') {
		return interval.Interval{}, malformed(s, "expected '[' or '(' at the start")
	}
	if !slices.OneOf(lit[len(lit)-1], ']', ')') {
		return interval.Interval{}, malformed(s, "expected ']' or ')' at the end")
	}
	left := interval.INCLUSIVE
	if lit[0] == '(' {
		left = interval.EXCLUSIVE
	}
	right := interval.INCLUSIVE
	if lit[len(lit)-1] == ')' {
		right = interval.EXCLUSIVE
	}

	body := lit[1 : len(lit)-1]
	parts := strings.SplitN(body, ",", 2)
	if len(parts) != 2 {
		return interval.Interval{}, malformed(s, "expected ',' between the bounds")
	}
	if strings.Contains(parts[1], ",") {
		return interval.Interval{}, malformed(s, "more than one ',' between the brackets")
	}

	low, err := parseBound(s, parts[0])
	if err != nil {
		return interval.Interval{}, err
	}
	high, err := parseBound(s, parts[1])
	if err != nil {
		return interval.Interval{}, err
	}

	iv, err := interval.Make(left, low, high, right)
	if err != nil {
		return interval.Interval{}, wrap(s, err)
	}
	if stepped {
		step, perr := strconv.ParseFloat(stepLit, 64)
		if perr != nil {
			return interval.Interval{}, malformed(s, "step %q is not a number", stepLit)
		}
		if iv, err = iv.WithStep(step); err != nil {
			return interval.Interval{}, wrap(s, err)
		}
	}
	return iv, nil
}

func parseBound(lit, tok string) (interval.Bound, error) {
	switch tok = strings.TrimSpace(tok); tok {
	case atomInfinity:
		return interval.PlusInfinity{}, nil
	case atomNegInfinity:
		return interval.MinusInfinity{}, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, malformed(lit, "bound %q is neither a number nor an infinity atom", tok)
	}
	// ParseFloat also reads spellings the grammar has no place for.
	if math.IsInf(f, 0) {
		return nil, malformed(lit, "infinite bounds are written %s or %s", atomInfinity, atomNegInfinity)
	}
	if math.IsNaN(f) {
		return nil, malformed(lit, "bound %q denotes no point on the extended number line", tok)
	}
	return interval.Finite(f), nil
}

func malformed(lit, format string, a ...interface{}) error {
	return wrap(lit, &interval.ConstructionError{
		Kind:   interval.MALFORMED,
		Detail: fmt.Sprintf(format, a...),
	})
}

func wrap(lit string, err error) error {
	return fmt.Errorf("parse %q: %w", lit, err)
}
