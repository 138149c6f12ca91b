package convert

import (
	"fmt"

	"github.com/spf13/cast"
)

// Builtin converts token using the native conversion for t.
func Builtin(t Type, token string) (any, error) {
	switch t {
	case TypeString:
		return token, nil
	case TypeInt:
		return cast.ToIntE(token)
	case TypeFloat:
		return cast.ToFloat64E(token)
	case TypeBool:
		return cast.ToBoolE(token)
	default:
		return nil, fmt.Errorf("no built-in conversion for %s", t)
	}
}
