package traverse

import (
	"errors"
	"testing"

	"github.com/cs-au-dk/stride/interval"
	"github.com/google/go-cmp/cmp"
)

func TestSeq(t *testing.T) {
	seq, err := Seq(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	var got []float64
	for v := range seq {
		got = append(got, v)
	}
	if diff := cmp.Diff([]float64{1, 3, 5, 7, 9}, got); diff != "" {
		t.Errorf("ranged sequence (-want +got):\n%s", diff)
	}
}

func TestSeqBreak(t *testing.T) {
	iv := mustInterval(t, interval.INCLUSIVE, interval.Finite(0), interval.PlusInfinity{}, interval.EXCLUSIVE, 3)
	seq, err := Seq(iv)
	if err != nil {
		t.Fatal(err)
	}

	var got []float64
	for v := range seq {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	if diff := cmp.Diff([]float64{0, 3, 6, 9}, got); diff != "" {
		t.Errorf("broken-out sequence (-want +got):\n%s", diff)
	}
}

// Ranging over the same sequence twice restarts the traversal.
func TestSeqRestarts(t *testing.T) {
	seq, err := Seq(oddsUpToNine(t))
	if err != nil {
		t.Fatal(err)
	}

	drain := func() (out []float64) {
		for v := range seq {
			out = append(out, v)
		}
		return
	}
	if diff := cmp.Diff(drain(), drain()); diff != "" {
		t.Errorf("re-ranged sequence diverged (-first +second):\n%s", diff)
	}
}

func TestSeqContinuous(t *testing.T) {
	iv := mustInterval(t, interval.INCLUSIVE, interval.Finite(1), interval.Finite(10), interval.INCLUSIVE, 0)
	if _, err := Seq(iv); !errors.Is(err, ErrNotEnumerable) {
		t.Errorf("Seq(%s) = %v, expected ErrNotEnumerable", iv, err)
	}
}
