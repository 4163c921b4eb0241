package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cs-au-dk/stride/interval"
)

// Format renders the canonical literal for an interval: exactly the
// form Parse reads back, without colorization and with the infinity
// atoms for infinite bounds. Format and Interval.String are deliberate
// twins: the former is for machines, the latter for humans.
func Format(iv interval.Interval) string {
	var sb strings.Builder
	sb.WriteString(iv.LeftBracket().Left())
	sb.WriteString(formatBound(iv.Low()))
	sb.WriteString(",")
	sb.WriteString(formatBound(iv.High()))
	sb.WriteString(iv.RightBracket().Right())
	if step, ok := iv.Step(); ok {
		sb.WriteString("//")
		sb.WriteString(strconv.FormatFloat(step, 'g', -1, 64))
	}
	return sb.String()
}

func formatBound(b interval.Bound) string {
	switch b := b.(type) {
	case interval.PlusInfinity:
		return atomInfinity
	case interval.MinusInfinity:
		return atomNegInfinity
	case interval.Finite:
		return strconv.FormatFloat(b.Float(), 'g', -1, 64)
	}
	panic(fmt.Sprintf("invalid pattern match: %v %T", b, b))
}
