package interval

import (
	"math"
	"testing"
)

func TestSize(t *testing.T) {
	type b = Finite
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		iv       Interval
		expected Cardinality
	}{
		// Continuous intervals are never countable, degenerate or not.
		{mustMake(t, INCLUSIVE, b(1), b(10), INCLUSIVE, 0), Unbounded{}},
		{mustMake(t, INCLUSIVE, b(5), b(5), INCLUSIVE, 0), Unbounded{}},
		{mustMake(t, EXCLUSIVE, M{}, P{}, EXCLUSIVE, 0), Unbounded{}},
		{mustMake(t, INCLUSIVE, P{}, P{}, INCLUSIVE, 0), Unbounded{}},

		// Structurally empty by an infinite bound.
		{mustMake(t, INCLUSIVE, P{}, P{}, INCLUSIVE, 1), Exact(0)},
		{mustMake(t, INCLUSIVE, M{}, M{}, INCLUSIVE, 1), Exact(0)},

		// A step against an infinite bound never exhausts.
		{mustMake(t, INCLUSIVE, M{}, b(0), INCLUSIVE, 1), Unbounded{}},
		{mustMake(t, INCLUSIVE, b(0), P{}, EXCLUSIVE, 2), Unbounded{}},
		{mustMake(t, EXCLUSIVE, M{}, P{}, EXCLUSIVE, 0.5), Unbounded{}},
		{mustMake(t, INCLUSIVE, M{}, b(10), INCLUSIVE, -3), Unbounded{}},

		// Ascending grids.
		{mustMake(t, INCLUSIVE, b(-2), b(-2), INCLUSIVE, 1), Exact(1)},
		{mustMake(t, INCLUSIVE, b(1), b(2), INCLUSIVE, 0.5), Exact(3)},
		{mustMake(t, INCLUSIVE, b(-2), b(-1), INCLUSIVE, 0.75), Exact(2)},
		{mustMake(t, INCLUSIVE, b(1), b(10), INCLUSIVE, 2), Exact(5)},
		{mustMake(t, INCLUSIVE, b(1), b(10), EXCLUSIVE, 2), Exact(5)},
		{mustMake(t, EXCLUSIVE, b(1), b(10), EXCLUSIVE, 2), Exact(4)},
		{mustMake(t, EXCLUSIVE, b(1), b(10), INCLUSIVE, 2), Exact(4)},
		{mustMake(t, INCLUSIVE, b(0), b(10), INCLUSIVE, 2), Exact(6)},
		{mustMake(t, INCLUSIVE, b(0), b(10), EXCLUSIVE, 2), Exact(5)},

		// Descending grids anchor at the upper bound.
		{mustMake(t, INCLUSIVE, b(1), b(2), INCLUSIVE, -0.5), Exact(3)},
		{mustMake(t, INCLUSIVE, b(1), b(10), INCLUSIVE, -2), Exact(5)},
		{mustMake(t, INCLUSIVE, b(1), b(10), EXCLUSIVE, -2), Exact(4)},
		{mustMake(t, EXCLUSIVE, b(1), b(10), INCLUSIVE, -2), Exact(5)},

		// Exclusive brackets can empty a degenerate interval.
		{mustMake(t, INCLUSIVE, b(5), b(5), EXCLUSIVE, 1), Exact(0)},
		{mustMake(t, EXCLUSIVE, b(5), b(5), INCLUSIVE, 1), Exact(0)},
		{mustMake(t, EXCLUSIVE, b(5), b(6), EXCLUSIVE, 2), Exact(0)},
		{mustMake(t, EXCLUSIVE, b(5), b(6), INCLUSIVE, -2), Exact(1)},

		// Steps wider than the span.
		{mustMake(t, INCLUSIVE, b(1), b(2), INCLUSIVE, 5), Exact(1)},
		{mustMake(t, EXCLUSIVE, b(1), b(2), INCLUSIVE, 5), Exact(0)},
	}

	for _, test := range tests {
		if got := test.iv.Size(); got != test.expected {
			t.Errorf("size(%s) = %s, expected %s\n", test.iv, got, test.expected)
		} else {
			t.Logf("size(%s) = %s\n", test.iv, got)
		}
	}
}

func TestSizeSaturates(t *testing.T) {
	iv := mustMake(t, INCLUSIVE, Finite(0), Finite(math.MaxFloat64), INCLUSIVE, math.SmallestNonzeroFloat64)
	if got := iv.Size(); got != Exact(math.MaxUint64) {
		t.Errorf("size(%s) = %s, expected the saturated count\n", iv, got)
	}
}

func TestCardinalityVariants(t *testing.T) {
	if !(Unbounded{}).IsUnbounded() || Exact(3).IsUnbounded() {
		t.Errorf("IsUnbounded verdicts flipped")
	}
	if Exact(3).Count() != 3 {
		t.Errorf("Exact(3).Count() = %d\n", Exact(3).Count())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Unbounded.Count() did not panic")
		}
	}()
	Unbounded{}.Count()
}

func TestAnchor(t *testing.T) {
	type b = Finite
	type P = PlusInfinity
	type M = MinusInfinity

	tests := []struct {
		iv       Interval
		expected Bound
	}{
		{mustMake(t, INCLUSIVE, b(1), b(10), EXCLUSIVE, 2), b(1)},
		{mustMake(t, EXCLUSIVE, b(1), b(10), EXCLUSIVE, 2), b(3)},
		{mustMake(t, INCLUSIVE, b(1), b(10), INCLUSIVE, -2), b(10)},
		{mustMake(t, INCLUSIVE, b(1), b(10), EXCLUSIVE, -2), b(8)},
		{mustMake(t, INCLUSIVE, b(0), P{}, EXCLUSIVE, 2), b(0)},
		{mustMake(t, EXCLUSIVE, M{}, b(10), INCLUSIVE, -2), b(10)},
		{mustMake(t, EXCLUSIVE, M{}, b(10), EXCLUSIVE, 2), M{}},
		{mustMake(t, INCLUSIVE, b(0), P{}, EXCLUSIVE, -2), P{}},
	}

	for _, test := range tests {
		if got := test.iv.Anchor(); got != test.expected {
			t.Errorf("anchor(%s) = %s, expected %s\n", test.iv, got, test.expected)
		}
	}
}
