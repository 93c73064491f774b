package interp

import (
	"errors"
	"fmt"
)

// ErrRuntime matches any *RuntimeError.
var ErrRuntime = errors.New("runtime error")

// RuntimeError reports a failure while executing instructions: division by
// zero, an unknown name, or a value of the wrong kind.
type RuntimeError struct {
	Msg   string
	Instr string // the instruction being executed, for context
}

func (e *RuntimeError) Error() string {
	if e.Instr != "" {
		return fmt.Sprintf("%s (in %s)", e.Msg, e.Instr)
	}
	return e.Msg
}

func (e *RuntimeError) Is(target error) bool { return target == ErrRuntime }

func runtimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
