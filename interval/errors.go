package interval

import "fmt"

// ErrKind names the specific constraint that a rejected interval
// description violated. Callers react to individual violations by
// matching on the kind instead of parsing error text.
type ErrKind int

const (
	// BOUND_ORDER flags a lower bound above the upper bound.
	BOUND_ORDER ErrKind = iota
	// ZERO_STEP flags a step of zero.
	ZERO_STEP
	// BAD_STEP flags a step that is not a finite number.
	BAD_STEP
	// BAD_BOUND flags a bound that denotes no point on the extended line.
	BAD_BOUND
	// MALFORMED flags a textual literal that does not follow the grammar.
	MALFORMED
)

func (k ErrKind) String() string {
	switch k {
	case BOUND_ORDER:
		return "bound order"
	case ZERO_STEP:
		return "zero step"
	case BAD_STEP:
		return "bad step"
	case BAD_BOUND:
		return "bad bound"
	case MALFORMED:
		return "malformed literal"
	}
	panic(errPatternMatch(k))
}

// ConstructionError rejects an interval description that violates a
// construction constraint. Kind names the constraint and Detail carries
// the offending values. It survives wrapping, so errors.As recovers it
// from any layer that decorates it.
type ConstructionError struct {
	Kind   ErrKind
	Detail string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func constructionErrorf(kind ErrKind, format string, a ...interface{}) *ConstructionError {
	return &ConstructionError{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}
