package dispatchers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/ui"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	owner docs.TypeRef
	specs []CommandSpec
	calls *int
}

func (f fakeTarget) Owner() docs.TypeRef { return f.owner }

func (f fakeTarget) Commands() []CommandSpec {
	if f.calls != nil {
		*f.calls++
	}
	return f.specs
}

// testOwner gives every test its own target type, so command sets declared
// by different tests never share a cached registry.
func testOwner(t *testing.T) docs.TypeRef {
	return docs.TypeRef{Namespace: "Test", Name: strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())}
}

// scriptReader serves fixed lines and counts reads.
type scriptReader struct {
	lines []string
	reads int
	err   error
}

func (r *scriptReader) ReadLine(string) (string, error) {
	if r.reads >= len(r.lines) {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[r.reads]
	r.reads++
	return line, nil
}

var errBoom = errors.New("boom")

// hostSpecs declares echo, add, inc and fail. Calls are appended to got.
func hostSpecs(got *[]any) []CommandSpec {
	return []CommandSpec{
		{
			Name:        "echo",
			Description: "Print text",
			Params:      []convert.Parameter{convert.Required("text", convert.TypeString)},
			Action: func(s *Session, args Args) error {
				*got = append(*got, args.String(0))
				s.Out().Println(args.String(0))
				return nil
			},
		},
		{
			Name:        "add",
			Description: "Add two integers",
			ParamHelp:   map[string]string{"b": "Second operand."},
			Params: []convert.Parameter{
				convert.Required("a", convert.TypeInt),
				convert.Optional("b", convert.TypeInt, 10),
			},
			Action: func(s *Session, args Args) error {
				*got = append(*got, args.Int(0), args.Int(1))
				s.Out().Printf("%d\n", args.Int(0)+args.Int(1))
				return nil
			},
		},
		{
			Name:        "inc",
			Description: "Increment an integer",
			Params:      []convert.Parameter{convert.Required("n", convert.TypeInt)},
			Action: func(s *Session, args Args) error {
				*got = append(*got, args.Int(0)+1)
				return nil
			},
		},
		{
			Name:        "fail",
			Description: "Always fails",
			Params:      []convert.Parameter{convert.Optional("panic", convert.TypeBool, false)},
			Action: func(s *Session, args Args) error {
				if args.Bool(0) {
					panic("handler exploded")
				}
				return errBoom
			},
		},
	}
}

func hostDocs(owner docs.TypeRef) *docs.Provider {
	return docs.FromEntries(owner.FullName(), []docs.Entry{
		{
			Key:     docs.MemberKey(owner, "add"),
			Summary: "  Adds two integers.\n",
			Remarks: "Overflow wraps.",
			Params:  map[string]string{"a": "First operand.", "b": "Ignored in favor of the descriptor."},
		},
		{
			Key:     docs.MemberKey(owner, "inc"),
			Summary: "Increments n.",
		},
	})
}

type testSession struct {
	*Session
	out   *bytes.Buffer
	calls *[]any
}

func newTestSession(t *testing.T, opts ...Option) testSession {
	t.Helper()

	owner := testOwner(t)
	calls := &[]any{}
	out := &bytes.Buffer{}

	all := append([]Option{
		WithOutput(ui.NewWriterTo(out)),
		WithDocs(hostDocs(owner)),
		WithReader(&scriptReader{}),
	}, opts...)

	s, err := NewSession(fakeTarget{owner: owner, specs: hostSpecs(calls)}, all...)
	require.NoError(t, err)

	return testSession{Session: s, out: out, calls: calls}
}
