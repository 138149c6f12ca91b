package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first token of a line names no command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("no such command '%s'. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
		Token:   command,
	}
}
