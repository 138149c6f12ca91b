package dispatchers

import (
	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/docs"
)

// Target is a dispatch target: a type that declares commands.
type Target interface {
	// Owner names the declaring type; it prefixes every documentation key.
	Owner() docs.TypeRef

	// Commands lists the command descriptors in display order.
	Commands() []CommandSpec
}

// CommandSpec is the descriptor a target registers for each command.
// Only specs with a non-blank Description become commands.
type CommandSpec struct {
	Name        string
	Member      string // documentation member name, defaults to Name
	Description string
	LongHelp    string
	ParamHelp   map[string]string
	Params      []convert.Parameter
	Action      CommandFunc
}
