package usage

import "fmt"

// IncorrectParameterType is returned when a token cannot be converted to the
// parameter's declared type and no custom converter applies.
func IncorrectParameterType(command string, position int, expected, token string) *Error {
	return &Error{
		Kind:     ErrIncorrectParameterType,
		Message:  fmt.Sprintf("%s: incorrect parameter type at position %d: expected %s, got '%s'", command, position, expected, token),
		Position: position,
		Expected: expected,
		Token:    token,
	}
}

// ConverterFailed is returned when a registered custom converter rejects a token.
func ConverterFailed(command string, position int, expected, token string, cause error) *Error {
	return &Error{
		Kind:     ErrIncorrectParameterType,
		Message:  fmt.Sprintf("%s: cannot convert '%s' at position %d to %s: %v", command, token, position, expected, cause),
		Position: position,
		Expected: expected,
		Token:    token,
		Err:      cause,
	}
}
