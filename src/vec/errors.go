package vec

import (
	"errors"
	"fmt"
)

var ErrTooFewArgs = errors.New("too few args")

// ArgsError reports a call that got fewer positional values than it needs.
type ArgsError struct {
	Method string
	Got    int
	Min    int
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("too few args passed to %s() [%d < %d]", e.Method, e.Got, e.Min)
}

func (e *ArgsError) Unwrap() error { return ErrTooFewArgs }

func argsErr(method string, got, min int) error {
	return &ArgsError{Method: method, Got: got, Min: min}
}
