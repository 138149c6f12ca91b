// Package convert turns command-line tokens into typed handler arguments.
package convert

// Type tags a parameter's expected value. The four built-in tags convert
// natively; any other tag needs a registered CastFunc.
type Type string

const (
	TypeInt    Type = "int"
	TypeString Type = "string"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
)

// Builtin reports whether t has a native conversion.
func (t Type) Builtin() bool {
	switch t {
	case TypeInt, TypeString, TypeFloat, TypeBool:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// Parameter describes one positional argument of a command.
// Parameters with defaults are expected to trail the required ones.
type Parameter struct {
	Name       string
	Type       Type
	HasDefault bool
	Default    any
}

// Required is a parameter without a default.
func Required(name string, t Type) Parameter {
	return Parameter{Name: name, Type: t}
}

// Optional is a parameter that falls back to def when its token is absent.
func Optional(name string, t Type, def any) Parameter {
	return Parameter{Name: name, Type: t, HasDefault: true, Default: def}
}
