package slices

// Find returns the first element of a slice satisfying the predicate.
func Find[E ~[]T, T any](l E, pred func(T) bool) (T, bool) {
	for _, x := range l {
		if pred(x) {
			return x, true
		}
	}
	var x T
	return x, false
}

// OneOf checks whether x is among the given alternatives.
func OneOf[T comparable](x T, xs ...T) bool {
	for _, x2 := range xs {
		if x == x2 {
			return true
		}
	}

	return false
}
