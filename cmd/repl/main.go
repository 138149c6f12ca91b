package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/footprint-tools/repl/internal/app"
	"github.com/footprint-tools/repl/internal/paths"
	"github.com/footprint-tools/repl/internal/ui"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	config    string
	noColor   bool
	docs      []string
	noHistory bool
	rest      []string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags

	fs := pflag.NewFlagSet("repl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: repl [flags] [command [args...]]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Without a command, reads commands from standard input until 'exit'.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	fs.SetInterspersed(false)

	fs.StringVar(&f.config, "config", "", "path to the config file")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.StringSliceVar(&f.docs, "docs", nil, "extra documentation file (.xml, .yaml); repeatable")
	fs.BoolVar(&f.noHistory, "no-history", false, "do not record or recall history")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	f.rest = fs.Args()
	return f, nil
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if f.config != "" {
		if err := os.Setenv(paths.ConfigEnvVar, f.config); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	a, err := app.New(app.Options{
		StyleEnabled: ui.IsTerminal(stdout) && !f.noColor,
		DocsPaths:    f.docs,
		NoHistory:    f.noHistory,
		Output:       stdout,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = a.Close() }()

	hostDocs, err := loadDemoDocs()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	s, err := a.NewSession(demo{}, a.NewReader(stdin), hostDocs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	s.RegisterConverter(typeDuration, parseDuration)

	// A command on the command line runs once instead of starting the loop.
	if len(f.rest) > 0 {
		if err := s.Execute(strings.Join(f.rest, " ")); err != nil {
			return 1
		}
		return 0
	}

	if err := s.Run(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
