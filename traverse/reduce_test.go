package traverse

import (
	"testing"

	"github.com/cs-au-dk/stride/interval"

	"github.com/benbjohnson/immutable"
	"github.com/google/go-cmp/cmp"
)

func oddsUpToNine(t *testing.T) interval.Interval {
	t.Helper()
	return mustInterval(t, interval.INCLUSIVE, interval.Finite(1), interval.Finite(9), interval.INCLUSIVE, 2)
}

func TestReduceRunsToDone(t *testing.T) {
	w, err := For(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	folded := Reduce(w, 0.0, func(v float64, acc float64) (float64, Command) {
		return acc + v, CONTINUE
	})
	if folded.Status != DONE {
		t.Errorf("fold status = %s, expected %s", folded.Status, DONE)
	}
	if folded.Value != 25 {
		t.Errorf("Σ fold = %g, expected 25", folded.Value)
	}
}

func TestReduceHalts(t *testing.T) {
	w, err := For(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	// The element that triggers the halt is already folded in.
	folded := Reduce(w, 0.0, func(v float64, acc float64) (float64, Command) {
		if v >= 5 {
			return acc + v, HALT
		}
		return acc + v, CONTINUE
	})
	if folded.Status != HALTED {
		t.Errorf("fold status = %s, expected %s", folded.Status, HALTED)
	}
	if folded.Value != 9 {
		t.Errorf("halted fold = %g, expected 1+3+5 = 9", folded.Value)
	}
}

func TestSuspendAndResumeToDone(t *testing.T) {
	w, err := For(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	// Suspending after every element single-steps the traversal.
	pause := func(v float64, acc *immutable.List[float64]) (*immutable.List[float64], Command) {
		return acc.Append(v), SUSPEND
	}

	folded := Reduce(w, immutable.NewList[float64](), pause)
	steps := 0
	for folded.Status == SUSPENDED {
		steps++
		folded = folded.Resume(pause)
	}

	if folded.Status != DONE {
		t.Errorf("fold status = %s, expected %s", folded.Status, DONE)
	}
	if steps != 5 {
		t.Errorf("resumed %d times, expected 5", steps)
	}
	if diff := cmp.Diff([]float64{1, 3, 5, 7, 9}, listSlice(folded.Value)); diff != "" {
		t.Errorf("single-stepped fold (-want +got):\n%s", diff)
	}
}

func TestSuspensionForks(t *testing.T) {
	w, err := For(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	once := false
	folded := Reduce(w, immutable.NewList[float64](),
		func(v float64, acc *immutable.List[float64]) (*immutable.List[float64], Command) {
			if !once {
				once = true
				return acc.Append(v), SUSPEND
			}
			return acc.Append(v), CONTINUE
		})
	if folded.Status != SUSPENDED {
		t.Fatalf("fold status = %s, expected %s", folded.Status, SUSPENDED)
	}

	// Each resumption runs on its own copy of the traversal state, so
	// the same suspension replays cleanly any number of times.
	all := []float64{1, 3, 5, 7, 9}
	for fork := 0; fork < 2; fork++ {
		r := folded.Resume(appendElement)
		if r.Status != DONE {
			t.Errorf("fork %d status = %s, expected %s", fork, r.Status, DONE)
		}
		if diff := cmp.Diff(all, listSlice(r.Value)); diff != "" {
			t.Errorf("fork %d (-want +got):\n%s", fork, diff)
		}
	}
	if diff := cmp.Diff([]float64{1}, listSlice(folded.Value)); diff != "" {
		t.Errorf("suspension mutated by its forks (-want +got):\n%s", diff)
	}
}

func TestResumeDemandsSuspension(t *testing.T) {
	w, err := For(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	folded := Reduce(w, 0.0, func(v float64, acc float64) (float64, Command) {
		return acc, HALT
	})

	defer func() {
		if recover() == nil {
			t.Errorf("Resume on a %s fold did not panic", folded.Status)
		}
	}()
	folded.Resume(func(v float64, acc float64) (float64, Command) {
		return acc, CONTINUE
	})
}

func TestTake(t *testing.T) {
	iv := oddsUpToNine(t)

	tests := []struct {
		n        int
		expected []float64
	}{
		{3, []float64{1, 3, 5}},
		{10, []float64{1, 3, 5, 7, 9}},
		{0, nil},
		{-1, nil},
	}

	for _, test := range tests {
		got, err := Take(iv, test.n)
		if err != nil {
			t.Errorf("take(%s, %d): %v", iv, test.n, err)
			continue
		}
		if diff := cmp.Diff(test.expected, got); diff != "" {
			t.Errorf("take(%s, %d) mismatch (-want +got):\n%s", iv, test.n, diff)
		}
	}
}
