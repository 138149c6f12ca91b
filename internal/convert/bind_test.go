package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/footprint-tools/repl/internal/usage"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		token   string
		want    any
		wantErr bool
	}{
		{name: "int", typ: TypeInt, token: "42", want: 42},
		{name: "negative int", typ: TypeInt, token: "-7", want: -7},
		{name: "int rejects text", typ: TypeInt, token: "abc", wantErr: true},
		{name: "int rejects fraction", typ: TypeInt, token: "3.5", wantErr: true},
		{name: "float", typ: TypeFloat, token: "2.5", want: 2.5},
		{name: "float rejects text", typ: TypeFloat, token: "x", wantErr: true},
		{name: "bool", typ: TypeBool, token: "true", want: true},
		{name: "bool short form", typ: TypeBool, token: "0", want: false},
		{name: "bool rejects text", typ: TypeBool, token: "maybe", wantErr: true},
		{name: "string identity", typ: TypeString, token: "hello", want: "hello"},
		{name: "custom type", typ: "duration", token: "1s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Builtin(tt.typ, tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBind(t *testing.T) {
	add := []Parameter{Required("a", TypeInt), Optional("b", TypeInt, 10)}

	tests := []struct {
		name     string
		params   []Parameter
		tokens   []string
		want     []any
		wantKind usage.ErrorKind
	}{
		{name: "all present", params: add, tokens: []string{"1", "2"}, want: []any{1, 2}},
		{name: "default used", params: add, tokens: []string{"5"}, want: []any{5, 10}},
		{name: "too few", params: add, tokens: nil, wantKind: usage.ErrTooFewArguments},
		{name: "too many", params: add, tokens: []string{"1", "2", "3"}, wantKind: usage.ErrTooManyArguments},
		{name: "type error", params: add, tokens: []string{"abc"}, wantKind: usage.ErrIncorrectParameterType},
		{name: "no params no tokens", params: nil, tokens: nil, want: []any{}},
		{name: "string default", params: []Parameter{Optional("func", TypeString, "")}, tokens: nil, want: []any{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bind("add", tt.params, tt.tokens, nil)
			if tt.wantKind != usage.ErrUnknown {
				require.Error(t, err)
				require.Equal(t, tt.wantKind, usage.KindOf(err))
				require.True(t, usage.IsArgumentError(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBind_TypeErrorNamesPosition(t *testing.T) {
	params := []Parameter{Required("a", TypeInt), Required("b", TypeInt)}

	_, err := Bind("add", params, []string{"1", "two"}, nil)
	require.Error(t, err)

	var uerr *usage.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, 2, uerr.Position)
	require.Equal(t, "int", uerr.Expected)
	require.Equal(t, "two", uerr.Token)
}

func TestBind_TooManyCheckedBeforeConversion(t *testing.T) {
	params := []Parameter{Required("a", TypeInt)}

	_, err := Bind("inc", params, []string{"abc", "extra"}, nil)
	require.Equal(t, usage.ErrTooManyArguments, usage.KindOf(err))
}

func TestBind_CustomConverterForBuiltinType(t *testing.T) {
	reg := NewRegistry()
	reg.Register(TypeInt, func(token string) (any, error) {
		if token == "abc" {
			return 123, nil
		}
		return nil, errors.New("not a known word")
	})
	params := []Parameter{Required("n", TypeInt)}

	got, err := Bind("inc", params, []string{"abc"}, reg)
	require.NoError(t, err)
	require.Equal(t, []any{123}, got)

	// The built-in conversion still runs first.
	got, err = Bind("inc", params, []string{"7"}, reg)
	require.NoError(t, err)
	require.Equal(t, []any{7}, got)
}

func TestBind_CustomType(t *testing.T) {
	reg := NewRegistry()
	reg.Register("duration", func(token string) (any, error) {
		return time.ParseDuration(token)
	})
	params := []Parameter{Required("d", "duration")}

	got, err := Bind("wait", params, []string{"1500ms"}, reg)
	require.NoError(t, err)
	require.Equal(t, []any{1500 * time.Millisecond}, got)

	_, err = Bind("wait", params, []string{"soon"}, reg)
	require.Error(t, err)
	require.Equal(t, usage.ErrIncorrectParameterType, usage.KindOf(err))
	require.Contains(t, err.Error(), "soon")
	require.Contains(t, err.Error(), "invalid duration")
}

func TestBind_UnregisteredCustomType(t *testing.T) {
	params := []Parameter{Required("d", "duration")}

	_, err := Bind("wait", params, []string{"1s"}, NewRegistry())
	require.Equal(t, usage.ErrIncorrectParameterType, usage.KindOf(err))
	require.Contains(t, err.Error(), "expected duration")
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("color", func(string) (any, error) { return "first", nil })
	reg.Register("color", func(string) (any, error) { return "second", nil })

	fn, ok := reg.Lookup("color")
	require.True(t, ok)
	v, err := fn("red")
	require.NoError(t, err)
	require.Equal(t, "second", v)

	var nilReg Registry
	_, ok = nilReg.Lookup("color")
	require.False(t, ok)
}
