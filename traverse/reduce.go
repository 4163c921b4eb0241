package traverse

import (
	"github.com/cs-au-dk/stride/interval"

	"github.com/benbjohnson/immutable"
)

// Command steers a fold from inside its reducer.
type Command int

const (
	// CONTINUE asks the fold for the next element.
	CONTINUE Command = iota
	// HALT stops the fold for good.
	HALT
	// SUSPEND pauses the fold so it can be resumed later.
	SUSPEND
)

func (c Command) String() string {
	switch c {
	case CONTINUE:
		return "continue"
	case HALT:
		return "halt"
	case SUSPEND:
		return "suspend"
	}
	panic(errPatternMatch(c))
}

// Status reports how a fold came to rest.
type Status int

const (
	// DONE marks a traversal that ran out of elements.
	DONE Status = iota
	// HALTED marks a fold stopped by its reducer.
	HALTED
	// SUSPENDED marks a paused fold that Resume picks back up.
	SUSPENDED
)

func (s Status) String() string {
	switch s {
	case DONE:
		return "done"
	case HALTED:
		return "halted"
	case SUSPENDED:
		return "suspended"
	}
	panic(errPatternMatch(s))
}

// Reducer consumes one element together with the accumulator so far and
// returns the new accumulator and a command steering the fold.
type Reducer[A any] func(v float64, acc A) (A, Command)

// Folded is the outcome of a fold: the accumulator, the status the fold
// came to rest with, and, after a suspension, the state Resume needs.
type Folded[A any] struct {
	Value  A
	Status Status

	resume *Walker
}

// Reduce drives the walker through f until the traversal exhausts or f
// commands otherwise. The element handed to f at the moment of a HALT
// or SUSPEND has already been folded into the accumulator. The walker
// is consumed; open a fresh one to traverse again.
func Reduce[A any](w *Walker, acc A, f Reducer[A]) Folded[A] {
	for {
		v, ok := w.Next()
		if !ok {
			return Folded[A]{Value: acc, Status: DONE}
		}
		next, cmd := f(v, acc)
		acc = next
		switch cmd {
		case CONTINUE:
		case HALT:
			return Folded[A]{Value: acc, Status: HALTED}
		case SUSPEND:
			return Folded[A]{Value: acc, Status: SUSPENDED, resume: w.Clone()}
		default:
			panic(errPatternMatch(cmd))
		}
	}
}

// Resume continues a suspended fold from the element after the
// suspension point. Suspensions fork: each Resume runs on its own copy
// of the traversal state, so one suspended fold can be resumed several
// times independently. Resume panics when the fold is not suspended.
func (r Folded[A]) Resume(f Reducer[A]) Folded[A] {
	if r.Status != SUSPENDED || r.resume == nil {
		panic(errInternal)
	}
	return Reduce(r.resume.Clone(), r.Value, f)
}

// Elements drains a traversal into a slice in traversal order; its
// length is exactly what the size oracle counts. Draining an interval
// of unbounded size never returns, so gate on Size or use Take.
func Elements(iv interval.Interval) ([]float64, error) {
	w, err := For(iv)
	if err != nil {
		return nil, err
	}
	folded := Reduce(w, immutable.NewList[float64](), appendElement)
	return listSlice(folded.Value), nil
}

// Take drains at most n elements, halting the traversal early. Safe on
// intervals of unbounded size.
func Take(iv interval.Interval, n int) ([]float64, error) {
	w, err := For(iv)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	folded := Reduce(w, immutable.NewList[float64](),
		func(v float64, acc *immutable.List[float64]) (*immutable.List[float64], Command) {
			acc = acc.Append(v)
			if acc.Len() >= n {
				return acc, HALT
			}
			return acc, CONTINUE
		})
	return listSlice(folded.Value), nil
}

// appendElement accumulates elements into a persistent list. The list
// shares structure across suspension snapshots, so forked resumptions
// extend their prefixes without copying.
func appendElement(v float64, acc *immutable.List[float64]) (*immutable.List[float64], Command) {
	return acc.Append(v), CONTINUE
}

func listSlice(l *immutable.List[float64]) []float64 {
	out := make([]float64, 0, l.Len())
	for it := l.Iterator(); !it.Done(); {
		_, v := it.Next()
		out = append(out, v)
	}
	return out
}
