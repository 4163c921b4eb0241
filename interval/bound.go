package interval

import (
	"math"
	"strconv"
)

// Bound is an interface implemented by all interval bounds i.e., any
// Finite value, PlusInfinity and MinusInfinity. These three are the only
// implementations; operations dispatch by exhaustive type switch.
type Bound interface {
	String() string

	// IsInfinite checks whether the bound is one of the infinities.
	IsInfinite() bool

	// Float unpacks the bound as an IEEE float: the value itself for a
	// finite bound, the floating point infinities otherwise.
	Float() float64

	// BINARY RELATIONS

	// Eq checks for interval bound equality.
	Eq(Bound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℝ.
	Leq(Bound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℝ.
	Geq(Bound) bool
	// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℝ.
	Lt(Bound) bool
	// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℝ.
	Gt(Bound) bool

	// BINARY OPERATIONS

	// Plus computes b1 + b2. The semantics of plus is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 + b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℝ  |  ∈  ℝ  |  b1 + b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℝ  |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℝ  |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |   -∞   |   panic   |
	// 	 -----------------------------
	Plus(Bound) Bound

	// Minus computes b1 - b2. The semantics of minus is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 - b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℝ  |  ∈  ℝ  |  b1 - b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℝ  |    ∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |  ∈  ℝ  |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℝ  |   -∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |  ∈  ℝ  |    -∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |   -∞   |   panic   |
	// 	|--------|--------|-----------|
	// 	|    ∞   |   -∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |    ∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |    ∞   |   panic   |
	// 	 -----------------------------
	Minus(Bound) Bound
}

type (
	// Finite is used to represent finite limits of an interval value.
	// A Finite bound never holds NaN or the floating point infinities;
	// constructors normalize those away.
	Finite float64
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// bound normalizes an IEEE float into a bound, mapping the floating
// point infinities to their symbolic counterparts. The caller guarantees
// x is not NaN.
func bound(x float64) Bound {
	switch {
	case math.IsInf(x, 1):
		return PlusInfinity{}
	case math.IsInf(x, -1):
		return MinusInfinity{}
	}
	return Finite(x)
}

// MakeBound converts an IEEE float into a bound. The floating point
// infinities become the symbolic infinities. NaN denotes no point on the
// extended number line and is rejected.
func MakeBound(x float64) (Bound, error) {
	if math.IsNaN(x) {
		return nil, constructionErrorf(BAD_BOUND, "NaN denotes no point on the extended number line")
	}
	return bound(x), nil
}

// IsInfinite is false for the finite bound.
func (Finite) IsInfinite() bool {
	return false
}

func (b Finite) String() string {
	return colorize.Bound(strconv.FormatFloat((float64)(b), 'g', -1, 64))
}

// Float unpacks the underlying value of the finite bound.
func (b Finite) Float() float64 {
	return (float64)(b)
}

// Eq compares for equality with another bound. Two finite bounds are
// equal if their underlying values are equal.
func (b1 Finite) Eq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case Finite:
		return b1 == b2
	}
	return false
}

// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℝ.
func (b1 Finite) Leq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case Finite:
		return b1 <= b2
	case PlusInfinity:
		return true
	case MinusInfinity:
		return false
	}
	return false
}

// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℝ.
func (b1 Finite) Geq(b2 Bound) bool {
	switch b2 := b2.(type) {
	case Finite:
		return b1 >= b2
	case PlusInfinity:
		return false
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℝ.
func (b1 Finite) Lt(b2 Bound) bool {
	switch b2 := b2.(type) {
	case Finite:
		return b1 < b2
	case PlusInfinity:
		return true
	case MinusInfinity:
		return false
	}
	return false
}

// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℝ.
func (b1 Finite) Gt(b2 Bound) bool {
	switch b2 := b2.(type) {
	case Finite:
		return b1 > b2
	case PlusInfinity:
		return false
	case MinusInfinity:
		return true
	}
	return false
}

// Plus computes b1 + b2. The semantics of plus is:
//
//	.--------------------.
//	|   b2   |  b1 + b2  |
//	|========|===========|
//	|   ∈ ℝ  |  b1 + b2  |
//	|--------|-----------|
//	|    ∞   |     ∞     |
//	|--------|-----------|
//	|   -∞   |    -∞     |
//	 --------------------
//
// A sum of finite bounds that overflows the float range normalizes to
// the corresponding infinity.
func (b1 Finite) Plus(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case Finite:
		return bound((float64)(b1) + (float64)(b2))
	case PlusInfinity:
		return PlusInfinity{}
	case MinusInfinity:
		return MinusInfinity{}
	}
	return nil
}

// Minus computes b1 - b2. The semantics of minus is:
//
//	.--------------------.
//	|   b2   |  b1 - b2  |
//	|========|===========|
//	|   ∈ ℝ  |  b1 - b2  |
//	|--------|-----------|
//	|    ∞   |    -∞     |
//	|--------|-----------|
//	|   -∞   |     ∞     |
//	 --------------------
func (b1 Finite) Minus(b2 Bound) Bound {
	switch b2 := b2.(type) {
	case Finite:
		return bound((float64)(b1) - (float64)(b2))
	case PlusInfinity:
		return MinusInfinity{}
	case MinusInfinity:
		return PlusInfinity{}
	}
	return nil
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return colorize.Bound("∞")
}

// Float unpacks ∞ as the positive floating point infinity.
func (PlusInfinity) Float() float64 {
	return math.Inf(1)
}

// Eq checks for interval bound equality.
func (PlusInfinity) Eq(b2 Bound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Leq computes ∞ ≤ b.
func (PlusInfinity) Leq(b2 Bound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes ∞ ≥ b. It is always true as ∞ is the largest possible bound.
func (PlusInfinity) Geq(Bound) bool {
	return true
}

// Lt computes ∞ < b. It is always false as ∞ is the largest possible bound.
func (PlusInfinity) Lt(Bound) bool {
	return false
}

// Gt computes ∞ > b.
func (PlusInfinity) Gt(b2 Bound) bool {
	switch b2.(type) {
	case PlusInfinity:
		return false
	}
	return true
}

// Plus computes ∞ + b. The semantics of plus is:
//
//	.---------------------.
//	|    b    |   ∞ + b   |
//	|=========|===========|
//	|   ∈ ℝ   |     ∞     |
//	|---------|-----------|
//	|   -∞    |   panic   |
//	|---------|-----------|
//	|    ∞    |     ∞     |
//	 ---------------------
func (PlusInfinity) Plus(b2 Bound) Bound {
	switch b2.(type) {
	case MinusInfinity:
		panic("∞ - ∞")
	}
	return PlusInfinity{}
}

// Minus computes ∞ - b. The semantics of minus is:
//
//	.---------------------.
//	|    b    |   ∞ - b   |
//	|=========|===========|
//	|   ∈ ℝ   |     ∞     |
//	|---------|-----------|
//	|   -∞    |     ∞     |
//	|---------|-----------|
//	|    ∞    |   panic   |
//	 ---------------------
func (PlusInfinity) Minus(b2 Bound) Bound {
	switch b2.(type) {
	case PlusInfinity:
		panic("∞ - ∞")
	}
	return PlusInfinity{}
}

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) String() string {
	return colorize.Bound("-∞")
}

// Float unpacks -∞ as the negative floating point infinity.
func (MinusInfinity) Float() float64 {
	return math.Inf(-1)
}

// Eq computes -∞ = b.
func (MinusInfinity) Eq(b2 Bound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return true
	}
	return false
}

// Leq computes -∞ ≤ b. It is always true as -∞ is the smallest possible bound.
func (MinusInfinity) Leq(Bound) bool {
	return true
}

// Geq computes -∞ ≥ b.
func (MinusInfinity) Geq(b2 Bound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes -∞ < b.
func (MinusInfinity) Lt(b2 Bound) bool {
	switch b2.(type) {
	case MinusInfinity:
		return false
	}
	return true
}

// Gt computes -∞ > b. It is always false as -∞ is the smallest possible bound.
func (MinusInfinity) Gt(Bound) bool {
	return false
}

// Plus computes -∞ + b. The semantics of plus is:
//
//	.---------------------.
//	|    b    |  -∞ + b   |
//	|=========|===========|
//	|   ∈ ℝ   |    -∞     |
//	|---------|-----------|
//	|   -∞    |    -∞     |
//	|---------|-----------|
//	|    ∞    |   panic   |
//	 ---------------------
func (MinusInfinity) Plus(b Bound) Bound {
	switch b.(type) {
	case PlusInfinity:
		panic("-∞ + ∞")
	}
	return MinusInfinity{}
}

// Minus computes -∞ - b. The semantics of minus is:
//
//	.---------------------.
//	|    b    |  -∞ - b   |
//	|=========|===========|
//	|   ∈ ℝ   |    -∞     |
//	|---------|-----------|
//	|   -∞    |   panic   |
//	|---------|-----------|
//	|    ∞    |    -∞     |
//	 ---------------------
func (MinusInfinity) Minus(b Bound) Bound {
	switch b.(type) {
	case MinusInfinity:
		panic("-∞ - (-∞)")
	}
	return MinusInfinity{}
}
