package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for recommendation upstream calls.
var (
	ErrNotConfigured = errors.New("recommend: upstream not configured")
	ErrRateLimited   = errors.New("recommend: rate limited by server")
	ErrBadRequest    = errors.New("recommend: bad request")
	ErrServer        = errors.New("recommend: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // Operation: "search", "validate", "summarize"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("recommend %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
