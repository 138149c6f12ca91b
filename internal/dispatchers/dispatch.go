package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/usage"
)

// Tokenize splits a line on runs of whitespace. There is no quoting or
// escaping.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Dispatch resolves the first token against reg and binds the remaining
// tokens to the command's parameters. An empty token list resolves to no
// command.
func Dispatch(reg *Registry, converters convert.Registry, tokens []string) (Resolution, error) {
	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
	}

	cmd, ok := reg.Resolve(name)
	if !ok {
		suggestions := FindSimilarCommands(name, reg, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(name, suggestions...)
	}

	values, err := convert.Bind(cmd.Name, cmd.Params, tokens[1:], converters)
	if err != nil {
		return Resolution{Command: cmd}, err
	}

	return Resolution{Command: cmd, Args: NewArgs(values...)}, nil
}

// invoke runs the handler and turns returned errors and panics into
// handler failures.
func invoke(s *Session, res Resolution) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = usage.HandlerFailure(res.Command.Name, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := res.Command.Action(s, res.Args); err != nil {
		return usage.HandlerFailure(res.Command.Name, err)
	}
	return nil
}
