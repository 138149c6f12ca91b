package convert

import "github.com/footprint-tools/repl/internal/usage"

// Bind converts tokens into values for params, in order.
//
// For each parameter a present token is first tried with the built-in
// conversion and then with the custom converter registered for the type.
// An absent token takes the parameter's default. Surplus tokens are reported
// before anything is converted.
func Bind(command string, params []Parameter, tokens []string, reg Registry) ([]any, error) {
	if len(tokens) > len(params) {
		return nil, usage.TooManyArguments(command, len(params), len(tokens))
	}

	values := make([]any, len(params))
	for i, p := range params {
		if i >= len(tokens) {
			if !p.HasDefault {
				return nil, usage.TooFewArguments(command, p.Name)
			}
			values[i] = p.Default
			continue
		}

		v, err := bindToken(command, i+1, p, tokens[i], reg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func bindToken(command string, position int, p Parameter, token string, reg Registry) (any, error) {
	if p.Type.Builtin() {
		if v, err := Builtin(p.Type, token); err == nil {
			return v, nil
		}
	}

	if fn, ok := reg.Lookup(p.Type); ok {
		v, err := fn(token)
		if err != nil {
			return nil, usage.ConverterFailed(command, position, p.Type.String(), token, err)
		}
		return v, nil
	}

	return nil, usage.IncorrectParameterType(command, position, p.Type.String(), token)
}
