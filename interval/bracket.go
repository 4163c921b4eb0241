package interval

// Bracket determines whether the bound it decorates belongs to the
// denoted set.
type Bracket int

const (
	// INCLUSIVE brackets admit the bound value itself.
	INCLUSIVE Bracket = iota
	// EXCLUSIVE brackets admit only values strictly beyond the bound.
	EXCLUSIVE
)

func (b Bracket) String() string {
	switch b {
	case INCLUSIVE:
		return "inclusive"
	case EXCLUSIVE:
		return "exclusive"
	}
	panic(errPatternMatch(b))
}

// Left renders the bracket as it appears on the lower side of an interval.
func (b Bracket) Left() string {
	switch b {
	case INCLUSIVE:
		return "["
	case EXCLUSIVE:
		return "("
	}
	panic(errPatternMatch(b))
}

// Right renders the bracket as it appears on the upper side of an interval.
func (b Bracket) Right() string {
	switch b {
	case INCLUSIVE:
		return "]"
	case EXCLUSIVE:
		return ")"
	}
	panic(errPatternMatch(b))
}
