package interval

import (
	"math"
	"strconv"
)

// Cardinality is the verdict of the size oracle: either an exact
// non-negative element count or Unbounded for intervals that are not
// finitely countable. Exact and Unbounded are the only implementations.
type Cardinality interface {
	String() string

	// IsUnbounded checks whether the denoted set is not finitely countable.
	IsUnbounded() bool

	// Count unpacks the exact element count, and panics on Unbounded.
	Count() uint64
}

type (
	// Exact is a finite element count.
	Exact uint64
	// Unbounded marks an interval that is not finitely countable.
	Unbounded struct{}
)

func (c Exact) String() string {
	return colorize.Cardinality(strconv.FormatUint((uint64)(c), 10))
}

// IsUnbounded is false for an exact count.
func (Exact) IsUnbounded() bool {
	return false
}

// Count unpacks the underlying element count.
func (c Exact) Count() uint64 {
	return (uint64)(c)
}

func (Unbounded) String() string {
	return colorize.Cardinality("∞")
}

// IsUnbounded is true for the unbounded cardinality.
func (Unbounded) IsUnbounded() bool {
	return true
}

// Count panics: an unbounded interval has no element count.
func (Unbounded) Count() uint64 {
	panic("count of an unbounded interval")
}

// Size reports how many elements the interval denotes. The verdict is
// reached in rule order:
//
//  1. A continuous interval is never finitely countable, degenerate or
//     not: Unbounded.
//  2. An upper bound of -∞ or a lower bound of ∞ leaves no room for any
//     element: Exact(0).
//  3. A step paired with an infinite bound yields an endless grid:
//     Unbounded.
//  4. Otherwise both bounds are finite and the count follows in closed
//     form from the anchor element and the step.
//
// The closed form agrees with enumeration by construction: traversal
// emits exactly Count() elements (see the traverse package). Ascending
// steps anchor at the lower bound, descending steps at the upper one; an
// exclusive bracket on the anchor side shifts the anchor one step
// inward, and an exclusive bracket on the far side trims the final grid
// point when it falls on the bound itself. Counts beyond the uint64
// range saturate at the maximum.
func (i Interval) Size() Cardinality {
	if !i.stepped {
		return Unbounded{}
	}
	if i.high.Eq(MinusInfinity{}) || i.low.Eq(PlusInfinity{}) {
		return Exact(0)
	}
	if i.low.IsInfinite() || i.high.IsInfinite() {
		return Unbounded{}
	}

	lo, hi := i.FiniteBounds()
	s := i.step
	start := i.Anchor().Float()

	var count float64
	if s > 0 {
		switch i.right {
		case INCLUSIVE:
			if start > hi {
				return Exact(0)
			}
			count = math.Floor((hi-start)/s) + 1
		case EXCLUSIVE:
			count = math.Ceil((hi - start) / s)
		default:
			panic(errPatternMatch(i.right))
		}
	} else {
		switch i.left {
		case INCLUSIVE:
			if start < lo {
				return Exact(0)
			}
			count = math.Floor((start-lo)/-s) + 1
		case EXCLUSIVE:
			count = math.Ceil((start - lo) / -s)
		default:
			panic(errPatternMatch(i.left))
		}
	}

	// A start shifted past the far bound must truncate to the empty
	// interval, never to a negative count.
	if count <= 0 {
		return Exact(0)
	}
	if count >= 1<<64 {
		return Exact(math.MaxUint64)
	}
	return Exact((uint64)(count))
}

// Anchor returns the element the traversal grid grows from: the bound
// on the travel side, shifted one step inward when its bracket is
// exclusive. The result is only meaningful for stepped intervals; Anchor
// panics on continuous ones.
func (i Interval) Anchor() Bound {
	if !i.stepped {
		panic(errInternal)
	}
	if i.step > 0 {
		if i.left == EXCLUSIVE {
			return i.low.Plus(Finite(i.step))
		}
		return i.low
	}
	if i.right == EXCLUSIVE {
		return i.high.Plus(Finite(i.step))
	}
	return i.high
}
