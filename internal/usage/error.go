package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrTooFewArguments
	ErrTooManyArguments
	ErrIncorrectParameterType
	ErrHandlerFailure
	ErrDocumentationLoad
	ErrMissingDocumentation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "command not found"
	case ErrTooFewArguments, ErrTooManyArguments:
		return "argument count"
	case ErrIncorrectParameterType:
		return "argument type"
	case ErrHandlerFailure:
		return "handler failure"
	case ErrDocumentationLoad:
		return "documentation load"
	case ErrMissingDocumentation:
		return "missing documentation"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string

	// Position is the 1-based parameter position for argument type errors.
	Position int
	Expected string
	Token    string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// IsArgumentError reports whether err is a count or type error, i.e. one that
// should be followed by the command's usage line.
func IsArgumentError(err error) bool {
	switch KindOf(err) {
	case ErrTooFewArguments, ErrTooManyArguments, ErrIncorrectParameterType:
		return true
	default:
		return false
	}
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
