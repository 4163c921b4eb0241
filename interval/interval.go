package interval

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is an immutable interval over the extended number line. Any
// interval consists of two bounds, `low` and `high`, a bracket deciding
// membership of each bound, and an optional non-zero step. A stepped
// interval denotes the grid of values reachable from its anchor bound in
// step increments; a continuous interval denotes the whole stretch
// between its bounds.
//
// Interval values are comparable with ==. The zero value is not a valid
// interval; go through the constructors.
type Interval struct {
	left, right Bracket
	low, high   Bound
	step        float64
	stepped     bool
}

// Make creates an interval with possibly infinite bounds and no step.
// Descriptions where the lower bound lies above the upper are rejected
// with a BOUND_ORDER construction error.
func Make(left Bracket, low, high Bound, right Bracket) (Interval, error) {
	if low == nil || high == nil {
		return Interval{}, constructionErrorf(BAD_BOUND, "missing bound")
	}
	if low.Gt(high) {
		return Interval{}, constructionErrorf(BOUND_ORDER, "lower bound %s above upper bound %s", low, high)
	}
	return Interval{left: left, right: right, low: low, high: high}, nil
}

// WithStep derives an interval that carries the given step. The step
// must be a non-zero finite number; its sign picks the traversal
// direction. Zero steps are rejected with a ZERO_STEP construction
// error, NaN and infinite steps with BAD_STEP.
func (i Interval) WithStep(step float64) (Interval, error) {
	switch {
	case step == 0:
		return Interval{}, constructionErrorf(ZERO_STEP, "step must be non-zero")
	case math.IsNaN(step) || math.IsInf(step, 0):
		return Interval{}, constructionErrorf(BAD_STEP, "step %v is not a finite number", step)
	}
	i.step, i.stepped = step, true
	return i, nil
}

// Continuous derives an interval with the step removed.
func (i Interval) Continuous() Interval {
	i.step, i.stepped = 0, false
	return i
}

// The derived constructors below cover the common bracket combinations:
//
//	.-----------------------------------.
//	|  constructor   |     denotes      |
//	|================|==================|
//	| Closed(x, y)   |     [x, y]       |
//	|----------------|------------------|
//	| Open(x, y)     |     (x, y)       |
//	|----------------|------------------|
//	| ClosedOpen     |     [x, y)       |
//	|----------------|------------------|
//	| OpenClosed     |     (x, y]       |
//	|----------------|------------------|
//	| AtLeast(x)     |     [x, ∞)       |
//	|----------------|------------------|
//	| GreaterThan(x) |     (x, ∞)       |
//	|----------------|------------------|
//	| AtMost(y)      |    (-∞, y]       |
//	|----------------|------------------|
//	| LessThan(y)    |    (-∞, y)       |
//	|----------------|------------------|
//	| All()          |    (-∞, ∞)       |
//	 -----------------------------------

// Closed creates the interval [lo, hi].
func Closed(lo, hi float64) (Interval, error) {
	return fromFloats(INCLUSIVE, lo, hi, INCLUSIVE)
}

// Open creates the interval (lo, hi).
func Open(lo, hi float64) (Interval, error) {
	return fromFloats(EXCLUSIVE, lo, hi, EXCLUSIVE)
}

// ClosedOpen creates the interval [lo, hi).
func ClosedOpen(lo, hi float64) (Interval, error) {
	return fromFloats(INCLUSIVE, lo, hi, EXCLUSIVE)
}

// OpenClosed creates the interval (lo, hi].
func OpenClosed(lo, hi float64) (Interval, error) {
	return fromFloats(EXCLUSIVE, lo, hi, INCLUSIVE)
}

// AtLeast creates the interval [lo, ∞). It panics if lo is NaN.
func AtLeast(lo float64) Interval {
	return mustFromFloats(INCLUSIVE, lo, math.Inf(1), EXCLUSIVE)
}

// GreaterThan creates the interval (lo, ∞). It panics if lo is NaN.
func GreaterThan(lo float64) Interval {
	return mustFromFloats(EXCLUSIVE, lo, math.Inf(1), EXCLUSIVE)
}

// AtMost creates the interval (-∞, hi]. It panics if hi is NaN.
func AtMost(hi float64) Interval {
	return mustFromFloats(EXCLUSIVE, math.Inf(-1), hi, INCLUSIVE)
}

// LessThan creates the interval (-∞, hi). It panics if hi is NaN.
func LessThan(hi float64) Interval {
	return mustFromFloats(EXCLUSIVE, math.Inf(-1), hi, EXCLUSIVE)
}

// All creates the unbounded interval (-∞, ∞).
func All() Interval {
	return mustFromFloats(EXCLUSIVE, math.Inf(-1), math.Inf(1), EXCLUSIVE)
}

func fromFloats(left Bracket, lo, hi float64, right Bracket) (Interval, error) {
	lb, err := MakeBound(lo)
	if err != nil {
		return Interval{}, err
	}
	hb, err := MakeBound(hi)
	if err != nil {
		return Interval{}, err
	}
	return Make(left, lb, hb, right)
}

func mustFromFloats(left Bracket, lo, hi float64, right Bracket) Interval {
	iv, err := fromFloats(left, lo, hi, right)
	if err != nil {
		panic(err)
	}
	return iv
}

// Low returns the lower bound.
func (i Interval) Low() Bound {
	return i.low
}

// High returns the upper bound.
func (i Interval) High() Bound {
	return i.high
}

// LeftBracket returns the bracket governing the lower bound.
func (i Interval) LeftBracket() Bracket {
	return i.left
}

// RightBracket returns the bracket governing the upper bound.
func (i Interval) RightBracket() Bracket {
	return i.right
}

// Step unpacks the step, if any.
func (i Interval) Step() (float64, bool) {
	return i.step, i.stepped
}

// Stepped checks whether the interval carries a step.
func (i Interval) Stepped() bool {
	return i.stepped
}

// FiniteBounds unpacks the interval bounds, if finite, and panics otherwise.
func (i Interval) FiniteBounds() (float64, float64) {
	if i.low.IsInfinite() || i.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite bounds", i))
	}
	return i.low.Float(), i.high.Float()
}

func (i Interval) String() string {
	s := colorize.Bracket(i.left.Left()) +
		i.low.String() + ", " + i.high.String() +
		colorize.Bracket(i.right.Right())
	if i.stepped {
		s += colorize.Step("//" + strconv.FormatFloat(i.step, 'g', -1, 64))
	}
	return s
}
