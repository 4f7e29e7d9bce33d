package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownItem
	ErrNotAllowed
	ErrInvalidConfig
	ErrFailedConfigPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Invalid config
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Unknown menu item
//	  - Command not allowed
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownItem:      2,
	ErrNotAllowed:       2,
	ErrInvalidConfig:    1,
	ErrFailedConfigPath: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
