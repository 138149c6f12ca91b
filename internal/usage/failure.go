package usage

import "fmt"

// HandlerFailure wraps an error (or recovered panic) raised by a command handler.
func HandlerFailure(command string, cause error) *Error {
	return &Error{
		Kind:    ErrHandlerFailure,
		Message: fmt.Sprintf("%s: %v", command, cause),
		Err:     cause,
	}
}

// DocumentationLoad is returned when a documentation source cannot be read or parsed.
func DocumentationLoad(owner, path string, cause error) *Error {
	return &Error{
		Kind:    ErrDocumentationLoad,
		Message: fmt.Sprintf("load documentation for %s from %s: %v", owner, path, cause),
		Err:     cause,
	}
}

// MissingDocumentation describes a lookup that found no entry. It is never fatal.
func MissingDocumentation(key string) *Error {
	return &Error{
		Kind:    ErrMissingDocumentation,
		Message: fmt.Sprintf("no documentation for %s", key),
		Token:   key,
	}
}
