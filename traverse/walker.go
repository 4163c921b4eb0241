package traverse

import (
	"errors"

	"github.com/cs-au-dk/stride/interval"
)

// ErrNotEnumerable rejects enumeration of a continuous interval: without
// a step there is no grid of elements to walk.
var ErrNotEnumerable = errors.New("interval is not enumerable without a step")

// Walker is a cursor over the elements of a stepped interval in
// traversal order: ascending steps walk up from the lower bound,
// descending steps walk down from the upper one. Elements are derived
// by index from the interval's anchor, so a walker emits exactly the
// number of elements the size oracle reports; over an interval of
// unbounded size it never exhausts.
//
// A walker is single-threaded. Concurrent traversals each open their
// own walker; the interval value itself is immutable and freely shared.
type Walker struct {
	base      float64
	step      float64
	k         uint64
	remaining uint64
	bounded   bool
}

// For opens a fresh traversal over the interval. Every call restarts
// from the anchor. Continuous intervals are rejected with
// ErrNotEnumerable.
func For(iv interval.Interval) (*Walker, error) {
	step, ok := iv.Step()
	if !ok {
		return nil, ErrNotEnumerable
	}
	w := &Walker{base: iv.Anchor().Float(), step: step}
	if c, exact := iv.Size().(interval.Exact); exact {
		w.bounded = true
		w.remaining = c.Count()
	}
	return w, nil
}

// Next emits the next element and advances, or reports exhaustion.
func (w *Walker) Next() (float64, bool) {
	if w.bounded && w.remaining == 0 {
		return 0, false
	}
	v := w.base + (float64)(w.k)*w.step
	w.k++
	if w.bounded {
		w.remaining--
	}
	return v, true
}

// Clone returns an independent walker positioned at the same element.
func (w *Walker) Clone() *Walker {
	c := *w
	return &c
}
