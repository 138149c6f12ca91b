package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "single key-value",
			lines: []string{"prompt=$"},
			want:  map[string]string{"prompt": "$"},
		},
		{
			name: "ignores blank and comment lines",
			lines: []string{
				"# Session",
				"",
				"history=true",
				"  # indented comment",
				"   ",
				"log_level=debug",
			},
			want: map[string]string{
				"history":   "true",
				"log_level": "debug",
			},
		},
		{
			name:  "trims whitespace around key and value",
			lines: []string{"  history_limit  =  50  "},
			want:  map[string]string{"history_limit": "50"},
		},
		{
			name:  "quoted value keeps inner spaces",
			lines: []string{`prompt="> "`},
			want:  map[string]string{"prompt": "> "},
		},
		{
			name:  "equals sign in value",
			lines: []string{"docs_path=/tmp/a=b.xml"},
			want:  map[string]string{"docs_path": "/tmp/a=b.xml"},
		},
		{
			name:  "empty value is valid",
			lines: []string{"docs_path="},
			want:  map[string]string{"docs_path": ""},
		},
		{
			name:  "BOM is stripped from first line",
			lines: []string{"\uFEFFprompt=%", "history=false"},
			want:  map[string]string{"prompt": "%", "history": "false"},
		},
		{
			name:  "duplicate keys - last one wins",
			lines: []string{"prompt=a", "prompt=b"},
			want:  map[string]string{"prompt": "b"},
		},
		{
			name:    "line without equals sign",
			lines:   []string{"prompt=a", "garbage"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		key       string
		value     string
		want      []string
		wantFound bool
	}{
		{
			name:      "replaces existing key",
			lines:     []string{"# c", "prompt=>", "history=true"},
			key:       "history",
			value:     "false",
			want:      []string{"# c", "prompt=>", "history=false"},
			wantFound: true,
		},
		{
			name:      "appends missing key",
			lines:     []string{"prompt=>"},
			key:       "log_level",
			value:     "debug",
			want:      []string{"prompt=>", "log_level=debug"},
			wantFound: false,
		},
		{
			name:      "keeps inline comment",
			lines:     []string{"history_limit=20 # lines"},
			key:       "history_limit",
			value:     "5",
			want:      []string{"history_limit=5 # lines"},
			wantFound: true,
		},
		{
			name:      "quotes values with spaces",
			lines:     nil,
			key:       "prompt",
			value:     "repl> ",
			want:      []string{`prompt="repl> "`},
			wantFound: false,
		},
		{
			name:      "ignores commented assignment",
			lines:     []string{"# docs_path="},
			key:       "docs_path",
			value:     "a.xml",
			want:      []string{"# docs_path=", "docs_path=a.xml"},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantFound, found)
		})
	}
}

func TestUnset(t *testing.T) {
	lines := []string{"# keep", "prompt=>", "history=true", "prompt=again"}

	got, removed := Unset(lines, "prompt")
	require.True(t, removed)
	require.Equal(t, []string{"# keep", "history=true"}, got)

	got, removed = Unset(got, "missing")
	require.False(t, removed)
	require.Equal(t, []string{"# keep", "history=true"}, got)
}
