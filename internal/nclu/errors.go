package nclu

import "github.com/joelmoss/nclu/internal/errs"

// Re-export errors for convenience.
var (
	ErrCommandFailed  = errs.ErrCommandFailed
	ErrInvalidRequest = errs.ErrInvalidRequest
)

// CommandError is returned when net exits non-zero or reports an ERROR in
// its output. Error() is the message shown to the caller, unchanged.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return errs.ErrCommandFailed
}
