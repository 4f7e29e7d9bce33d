package usage

import "fmt"

// NotAllowed is returned when a gated command is used without permission.
func NotAllowed(command string) *Error {
	return &Error{
		Kind:    ErrNotAllowed,
		Message: fmt.Sprintf("conch: '%s' requires admin mode. Start with CONCH_ADMIN=1.", command),
	}
}
