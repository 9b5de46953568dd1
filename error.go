package toolkit

import "errors"

// Success is the nil error. Every fallible operation in the toolkit
// returns one of the sentinels below (possibly wrapped) instead of
// panicking, so callers can branch with errors.Is.
var (
	ErrNoMemory        = errors.New("out of memory")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("access out of bounds")
	ErrEmpty           = errors.New("container is empty")
	ErrNotFound        = errors.New("item not found")
	ErrUnknown         = errors.New("unknown error")
)

// Describe maps an error returned by the toolkit to a constant descriptive
// string, for diagnostics only. nil describes as "success"; errors that do
// not wrap a toolkit sentinel describe as "unknown error".
func Describe(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoMemory):
		return "out of memory"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid argument"
	case errors.Is(err, ErrOutOfBounds):
		return "access out of bounds"
	case errors.Is(err, ErrEmpty):
		return "container is empty"
	case errors.Is(err, ErrNotFound):
		return "item not found"
	default:
		return "unknown error"
	}
}
