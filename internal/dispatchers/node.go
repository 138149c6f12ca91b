package dispatchers

import (
	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/spf13/cast"
)

// CommandFunc is a command handler. A returned error is reported to the
// user and the session keeps running.
type CommandFunc func(s *Session, args Args) error

// Command is a registered command. It is immutable once its registry is
// built.
type Command struct {
	Name        string
	Member      string
	Owner       docs.TypeRef
	Params      []convert.Parameter
	Description string
	LongHelp    string
	ParamHelp   map[string]string
	Action      CommandFunc
}

// DocKey is the canonical documentation key for the command.
func (c *Command) DocKey() docs.Key {
	return docs.MemberKey(c.Owner, c.Member)
}

// Resolution is the outcome of resolving and binding one input line.
type Resolution struct {
	Command *Command
	Args    Args
}

// Args holds the bound parameter values of one invocation.
type Args struct {
	values []any
}

// NewArgs wraps already converted values.
func NewArgs(values ...any) Args {
	return Args{values: values}
}

// Len returns the number of bound values.
func (a Args) Len() int {
	return len(a.values)
}

// Value returns the i-th value, or nil when out of range.
func (a Args) Value(i int) any {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

// Int returns the i-th value as an int.
func (a Args) Int(i int) int {
	return cast.ToInt(a.Value(i))
}

// Float returns the i-th value as a float64.
func (a Args) Float(i int) float64 {
	return cast.ToFloat64(a.Value(i))
}

// Bool returns the i-th value as a bool.
func (a Args) Bool(i int) bool {
	return cast.ToBool(a.Value(i))
}

// String returns the i-th value as a string.
func (a Args) String(i int) string {
	return cast.ToString(a.Value(i))
}
