package interval

import (
	"math"

	"github.com/cs-au-dk/stride/utils"

	"gonum.org/v1/gonum/floats/scalar"
)

// admits checks the query against the bounds and brackets alone,
// ignoring any step grid.
func (i Interval) admits(q Bound) bool {
	switch i.left {
	case INCLUSIVE:
		if !q.Geq(i.low) {
			return false
		}
	case EXCLUSIVE:
		if !q.Gt(i.low) {
			return false
		}
	default:
		panic(errPatternMatch(i.left))
	}
	switch i.right {
	case INCLUSIVE:
		return q.Leq(i.high)
	case EXCLUSIVE:
		return q.Lt(i.high)
	default:
		panic(errPatternMatch(i.right))
	}
}

// onGrid checks whether the offset of a value from the grid anchor is a
// whole number of steps, within the configured tolerance. The remainder
// may land on either edge of the step, so both are accepted.
func onGrid(offset, step float64) bool {
	eps := utils.Opts().Epsilon()
	r := math.Mod(offset, step)
	return scalar.EqualWithinAbs(r, 0, eps) ||
		scalar.EqualWithinAbs(math.Abs(r), math.Abs(step), eps)
}

// Contains decides point membership of x:
//
//  1. An interval of size zero has no members.
//  2. x must be admitted by both bounds under their brackets. An
//     infinite bound constrains no finite query; the floating point
//     infinities themselves are admitted only next to an inclusive
//     bound of the same sign.
//  3. A stepped interval with finite bounds additionally requires x to
//     lie on the step grid anchored at the lower bound. With an
//     infinite bound there is no usable anchor and the bounds check
//     alone decides.
//
// The grid anchors at the lower bound regardless of step sign, while
// traversal of a descending interval walks from the upper one. The two
// agree on the denoted set exactly when the span divides the step
// evenly; otherwise membership follows the low anchor.
func (i Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if c, ok := i.Size().(Exact); ok && c == 0 {
		return false
	}
	q := bound(x)
	if !i.admits(q) {
		return false
	}
	if !i.stepped || i.low.IsInfinite() || i.high.IsInfinite() {
		return true
	}
	return onGrid(q.Minus(i.low).Float(), i.step)
}

// Encloses decides whether i covers the whole of inner, comparing
// endpoints and steps:
//
//   - An inner interval of size zero is enclosed by anything.
//   - A continuous i encloses inner when both of inner's endpoints are
//     admitted by i's bounds and brackets. At an endpoint the two
//     intervals share, an exclusive bracket on i rejects an inclusive
//     one on inner; an infinite endpoint of inner requires the same
//     infinity on i.
//   - A stepped i never encloses a continuous inner: a continuum does
//     not fit in a grid.
//   - Between stepped intervals, both of inner's endpoint values must be
//     members of i and inner's step must be a whole multiple of i's, so
//     the grids nest.
//
// The verdict compares endpoint values, not the denoted sets. Inner
// brackets are not consulted on the stepped path, so a stepped interval
// whose exclusive bound is itself no member of the outer one is not
// enclosed, its own elements notwithstanding.
func (i Interval) Encloses(inner Interval) bool {
	if c, ok := inner.Size().(Exact); ok && c == 0 {
		return true
	}

	if !i.stepped {
		return admitsSide(inner.low, inner.left, i.low, i.left, Bound.Gt) &&
			admitsSide(inner.high, inner.right, i.high, i.right, Bound.Lt)
	}
	if !inner.stepped {
		return false
	}

	if !i.Contains(inner.low.Float()) || !i.Contains(inner.high.Float()) {
		return false
	}
	return onGrid(inner.step, i.step)
}

// admitsSide decides one endpoint of an enclosure query against the
// matching bound of a continuous outer interval. beyond is the strict
// comparison pointing into the outer interval (Gt on the low side, Lt
// on the high side).
func admitsSide(in Bound, inBr Bracket, out Bound, outBr Bracket, beyond func(Bound, Bound) bool) bool {
	switch {
	case beyond(in, out):
		return true
	case in.Eq(out) && in.IsInfinite():
		return true
	case in.Eq(out):
		return !(outBr == EXCLUSIVE && inBr == INCLUSIVE)
	}
	return false
}
