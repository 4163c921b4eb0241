package traverse

import (
	"iter"

	"github.com/cs-au-dk/stride/interval"
)

// Seq adapts a stepped interval to a range-able sequence. Every range
// over the sequence opens a fresh traversal, so the sequence restarts
// from the anchor each time; breaking out of the loop abandons the walk
// the way a halting fold would.
func Seq(iv interval.Interval) (iter.Seq[float64], error) {
	if !iv.Stepped() {
		return nil, ErrNotEnumerable
	}
	return func(yield func(float64) bool) {
		w, err := For(iv)
		if err != nil {
			return
		}
		for v, ok := w.Next(); ok; v, ok = w.Next() {
			if !yield(v) {
				return
			}
		}
	}, nil
}
