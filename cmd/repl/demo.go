package main

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/repl/internal/config"
	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/spf13/afero"
)

//go:embed docs/*
var docFiles embed.FS

const typeDuration convert.Type = "duration"

// maxRepeat bounds the output of repeat.
const maxRepeat = 100

// demo is the sample dispatch target shipped with the binary.
type demo struct{}

func (demo) Owner() docs.TypeRef {
	return docs.TypeRef{Namespace: "Footprint.Repl", Name: "Demo"}
}

func (demo) Commands() []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		{
			Name:        "echo",
			Member:      "Echo",
			Description: "Print a word",
			Params:      []convert.Parameter{convert.Required("text", convert.TypeString)},
			Action:      echo,
		},
		{
			Name:        "add",
			Member:      "Add",
			Description: "Add two integers",
			Params: []convert.Parameter{
				convert.Required("a", convert.TypeInt),
				convert.Optional("b", convert.TypeInt, 0),
			},
			Action: add,
		},
		{
			Name:        "repeat",
			Member:      "Repeat",
			Description: "Print a word several times",
			ParamHelp:   map[string]string{"count": fmt.Sprintf("How many times, at most %d.", maxRepeat)},
			Params: []convert.Parameter{
				convert.Required("text", convert.TypeString),
				convert.Optional("count", convert.TypeInt, 2),
				convert.Optional("sep", convert.TypeString, " "),
			},
			Action: repeat,
		},
		{
			Name:        "wait",
			Member:      "Wait",
			Description: "Pause for a duration",
			Params:      []convert.Parameter{convert.Optional("for", typeDuration, time.Second)},
			Action:      wait,
		},
		{
			Name:        "config",
			Member:      "Config",
			Description: "Show or change a configuration value",
			Params: []convert.Parameter{
				convert.Optional("key", convert.TypeString, ""),
				convert.Optional("value", convert.TypeString, ""),
			},
			Action: configure,
		},
		{
			Name:        "unset",
			Member:      "Unset",
			Description: "Reset a configuration value to its default",
			Params:      []convert.Parameter{convert.Required("key", convert.TypeString)},
			Action:      unset,
		},
	}
}

func loadDemoDocs() (*docs.Provider, error) {
	return docs.NewProvider(afero.FromIOFS{FS: docFiles}, docs.Source{Owner: "Footprint.Repl.Demo", Path: "docs/demo.xml"})
}

// parseDuration accepts Go durations ("1m30s") and bare seconds ("2.5").
func parseDuration(token string) (any, error) {
	if d, err := time.ParseDuration(token); err == nil {
		return d, nil
	}
	if secs, err := convert.Builtin(convert.TypeFloat, token); err == nil {
		return time.Duration(secs.(float64) * float64(time.Second)), nil
	}
	return nil, fmt.Errorf("%q is not a duration such as 500ms or 2s", token)
}

func echo(s *dispatchers.Session, args dispatchers.Args) error {
	_, _ = s.Out().Println(args.String(0))
	return nil
}

func add(s *dispatchers.Session, args dispatchers.Args) error {
	_, _ = s.Out().Println(args.Int(0) + args.Int(1))
	return nil
}

func repeat(s *dispatchers.Session, args dispatchers.Args) error {
	count := args.Int(1)
	if count < 0 || count > maxRepeat {
		return fmt.Errorf("count must be between 0 and %d", maxRepeat)
	}
	parts := make([]string, count)
	for i := range parts {
		parts[i] = args.String(0)
	}
	_, _ = s.Out().Println(strings.Join(parts, args.String(2)))
	return nil
}

func wait(s *dispatchers.Session, args dispatchers.Args) error {
	d, ok := args.Value(0).(time.Duration)
	if !ok || d < 0 {
		return errors.New("duration must not be negative")
	}
	time.Sleep(d)
	_, _ = s.Out().Println(s.Styler().Muted("waited " + d.String()))
	return nil
}

func configure(s *dispatchers.Session, args dispatchers.Args) error {
	cfg := config.NewProvider()
	key, value := args.String(0), args.String(1)

	if key == "" {
		all, err := cfg.GetAll()
		if err != nil {
			return err
		}
		for _, k := range domain.ConfigKeys {
			_, _ = s.Out().Printf("%s=%s\n", s.Styler().Info(k.Name), all[k.Name])
		}
		return nil
	}

	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown key %q", key)
	}
	if value == "" {
		v, _ := cfg.Get(key)
		_, _ = s.Out().Println(v)
		return nil
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	_, _ = s.Out().Println(s.Styler().Success(key + " updated"))
	return nil
}

func unset(s *dispatchers.Session, args dispatchers.Args) error {
	key := args.String(0)
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown key %q", key)
	}
	if err := config.NewProvider().Unset(key); err != nil {
		return err
	}
	_, _ = s.Out().Println(s.Styler().Success(key + " reset"))
	return nil
}
