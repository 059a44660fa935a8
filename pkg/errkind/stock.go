package errkind

// ArgumentError signals that a caller passed an unacceptable argument.
type ArgumentError struct {
	msg   string
	cause error
}

// NewArgumentError creates an ArgumentError with the given message.
func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{msg: message}
}

// WrapArgumentError creates an ArgumentError with the given message and cause.
func WrapArgumentError(message string, cause error) *ArgumentError {
	return &ArgumentError{msg: message, cause: cause}
}

func (e *ArgumentError) Error() string { return e.msg }
func (e *ArgumentError) Unwrap() error { return e.cause }

// StateError signals that an object is not in a state that allows the call.
type StateError struct {
	msg   string
	cause error
}

// NewStateError creates a StateError with the given message.
func NewStateError(message string) *StateError {
	return &StateError{msg: message}
}

// WrapStateError creates a StateError with the given message and cause.
func WrapStateError(message string, cause error) *StateError {
	return &StateError{msg: message, cause: cause}
}

func (e *StateError) Error() string { return e.msg }
func (e *StateError) Unwrap() error { return e.cause }

var (
	// Argument produces *ArgumentError instances.
	Argument = Define("argument", NewArgumentError, WrapArgumentError)

	// State produces *StateError instances.
	State = Define("state", NewStateError, WrapStateError)
)
