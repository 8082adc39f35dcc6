package errs

import "errors"

var (
	ErrCommandFailed        = errors.New("net command failed")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrConfirmationRequired = errors.New("confirmation required")
)
