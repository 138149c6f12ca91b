package docs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "method", input: "M:Footprint.Repl.Session.Help", want: "M:Footprint.Repl.Session.Help"},
		{name: "type", input: "T:Footprint.Repl.Session", want: "T:Footprint.Repl.Session"},
		{name: "surrounding space", input: "  P:Ns.T.Prop ", want: "P:Ns.T.Prop"},
		{name: "signature dropped", input: "M:Ns.T.Add(System.Int32,System.Int32)", want: "M:Ns.T.Add"},
		{name: "unknown kind", input: "X:Ns.T", wantErr: true},
		{name: "missing colon", input: "MNs.T", wantErr: true},
		{name: "too short", input: "M:", wantErr: true},
		{name: "empty segment", input: "M:Ns..Help", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMemberKey(t *testing.T) {
	owner := TypeRef{Namespace: "Footprint.Repl", Name: "Session"}

	require.Equal(t, Key("M:Footprint.Repl.Session.Help"), MemberKey(owner, "Help"))
	require.Equal(t, Key("T:Footprint.Repl.Session"), TypeKey(owner))
	require.Equal(t, KindMethod, MemberKey(owner, "Help").Kind())
	require.Equal(t, "Footprint.Repl.Session.Help", MemberKey(owner, "Help").Name())
}

func TestTypeRef_FullName(t *testing.T) {
	require.Equal(t, "Ns.Type", TypeRef{Namespace: "Ns", Name: "Type"}.FullName())
	require.Equal(t, "Type", TypeRef{Name: "Type"}.FullName())
}
