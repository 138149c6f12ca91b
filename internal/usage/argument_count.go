package usage

import "fmt"

// TooFewArguments is returned when a parameter without a default has no token.
func TooFewArguments(command string, missing string) *Error {
	return &Error{
		Kind:    ErrTooFewArguments,
		Message: fmt.Sprintf("%s: too few arguments (missing '%s')", command, missing),
	}
}

// TooManyArguments is returned when a line carries more tokens than parameters.
func TooManyArguments(command string, want, got int) *Error {
	return &Error{
		Kind:    ErrTooManyArguments,
		Message: fmt.Sprintf("%s: too many arguments (expected at most %d, got %d)", command, want, got),
	}
}
