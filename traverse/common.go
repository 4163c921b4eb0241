package traverse

import (
	"errors"
	"fmt"
)

var (
	errInternal     = errors.New("internal error")
	errPatternMatch = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)
