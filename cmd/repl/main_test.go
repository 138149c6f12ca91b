package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/paths"
	"github.com/stretchr/testify/require"
)

// sandbox keeps config, log and history inside a temp dir.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(paths.ConfigEnvVar, filepath.Join(dir, "replrc"))
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(func() { log.SetDefault(nil) })
	return dir
}

// stdinFrom returns a file whose contents are input.
func stdinFrom(t *testing.T, input string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(input), 0600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want flags
	}{
		{
			name: "no args",
			args: nil,
			want: flags{rest: []string{}},
		},
		{
			name: "command only",
			args: []string{"add", "1", "2"},
			want: flags{rest: []string{"add", "1", "2"}},
		},
		{
			name: "flags before command",
			args: []string{"--no-color", "--no-history", "echo", "hi"},
			want: flags{noColor: true, noHistory: true, rest: []string{"echo", "hi"}},
		},
		{
			name: "repeated docs",
			args: []string{"--docs", "a.xml", "--docs=b.yaml"},
			want: flags{docs: []string{"a.xml", "b.yaml"}, rest: []string{}},
		},
		{
			name: "flags after command belong to the command",
			args: []string{"echo", "--no-color"},
			want: flags{rest: []string{"echo", "--no-color"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := parseFlags(tt.args, &stderr)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      int
		wantOut   string
		wantError string
	}{
		{name: "help flag", args: []string{"--help"}, want: 0, wantError: "usage: repl"},
		{name: "unknown flag", args: []string{"--bogus"}, want: 2, wantError: "unknown flag"},
		{name: "one-shot add", args: []string{"add", "2", "3"}, want: 0, wantOut: "5\n"},
		{name: "one-shot default", args: []string{"add", "7"}, want: 0, wantOut: "7\n"},
		{name: "one-shot repeat", args: []string{"repeat", "ab", "3", "-"}, want: 0, wantOut: "ab-ab-ab\n"},
		{name: "one-shot bad type", args: []string{"add", "x"}, want: 1, wantOut: "usage: add a [b]"},
		{name: "one-shot unknown", args: []string{"ad", "1"}, want: 1, wantOut: "add"},
		{name: "missing docs file", args: []string{"--docs", "/nonexistent/docs.xml", "echo", "x"}, want: 1, wantError: "/nonexistent/docs.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sandbox(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, stdinFrom(t, ""), &stdout, &stderr)

			require.Equal(t, tt.want, code, "stderr: %s", stderr.String())
			require.Contains(t, stdout.String(), tt.wantOut)
			require.Contains(t, stderr.String(), tt.wantError)
		})
	}
}

func TestRun_Loop(t *testing.T) {
	sandbox(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--no-history"}, stdinFrom(t, "echo hi\nadd 1 2\nexit\necho never\n"), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "hi\n3\n", stdout.String())
}

func TestRun_HelpUsesEmbeddedDocs(t *testing.T) {
	sandbox(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"help", "wait"}, stdinFrom(t, ""), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "Pause for a while.")
	require.Contains(t, stdout.String(), "usage: wait [for]")
	require.Contains(t, stdout.String(), "500ms")
}

func TestRun_ConfigRoundTrip(t *testing.T) {
	dir := sandbox(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"config", "prompt", "$"}, stdinFrom(t, ""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "replrc"))
	require.NoError(t, err)
	require.Contains(t, string(data), "prompt=$")

	stdout.Reset()
	code = run([]string{"unset", "prompt"}, stdinFrom(t, ""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "prompt reset")

	stdout.Reset()
	code = run([]string{"config", "nope", "1"}, stdinFrom(t, ""), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), `unknown key "nope"`)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token   string
		want    time.Duration
		wantErr bool
	}{
		{token: "500ms", want: 500 * time.Millisecond},
		{token: "1m30s", want: 90 * time.Second},
		{token: "2", want: 2 * time.Second},
		{token: "0.5", want: 500 * time.Millisecond},
		{token: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseDuration(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDemo_RegistersAllCommands(t *testing.T) {
	reg, err := dispatchers.Build(demo{})
	require.NoError(t, err)
	require.Subset(t, reg.Names(), []string{"echo", "add", "repeat", "wait", "config", "unset", "help", "usage", "exit", "history"})
}

func TestDemoDocs_CoverEveryCommand(t *testing.T) {
	provider, err := loadDemoDocs()
	require.NoError(t, err)

	for _, spec := range (demo{}).Commands() {
		cmd := dispatchers.Command{Name: spec.Name, Member: spec.Member, Owner: demo{}.Owner()}
		_, ok := provider.Lookup(cmd.DocKey())
		require.True(t, ok, "no docs for %s", spec.Name)
	}
}
