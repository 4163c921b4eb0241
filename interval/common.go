package interval

import (
	"errors"
	"fmt"

	"github.com/cs-au-dk/stride/utils"

	"github.com/fatih/color"
)

// Pretty printer colorization for interval components. All colors degrade
// to plain rendering when the -no-colorize flag is set.
var colorize = struct {
	Bound       func(...interface{}) string
	Bracket     func(...interface{}) string
	Step        func(...interface{}) string
	Cardinality func(...interface{}) string
}{
	Bound: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Bracket: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Step: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	Cardinality: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
}

var (
	errInternal     = errors.New("internal error")
	errPatternMatch = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)
