package dispatchers

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/usage"
)

// SessionOwner declares the built-in commands.
var SessionOwner = docs.TypeRef{Namespace: "Footprint.Repl", Name: "Session"}

//go:embed docs/session.xml
var sessionDocs []byte

func builtinDocs() (*docs.Provider, error) {
	entries, err := docs.Parse(docs.FormatXML, sessionDocs)
	if err != nil {
		return nil, usage.DocumentationLoad(SessionOwner.FullName(), "docs/session.xml", err)
	}
	return docs.FromEntries(SessionOwner.FullName(), entries), nil
}

// sessionTarget declares help, usage, exit and history. They are ordinary
// commands appended after the host's.
type sessionTarget struct{}

func (sessionTarget) Owner() docs.TypeRef {
	return SessionOwner
}

func (sessionTarget) Commands() []CommandSpec {
	return []CommandSpec{
		{
			Name:        "help",
			Member:      "Help",
			Description: "Show the command list or help for one command",
			Params:      []convert.Parameter{convert.Optional("func", convert.TypeString, "")},
			Action:      helpAction,
		},
		{
			Name:        "usage",
			Member:      "Usage",
			Description: "Show the usage line of a command",
			Params:      []convert.Parameter{convert.Required("func", convert.TypeString)},
			Action:      usageAction,
		},
		{
			Name:        "exit",
			Member:      "Exit",
			Description: "Leave the session",
			Action:      exitAction,
		},
		{
			Name:        "history",
			Member:      "History",
			Description: "Show recently executed lines",
			Params:      []convert.Parameter{convert.Optional("count", convert.TypeInt, 0)},
			Action:      historyAction,
		},
	}
}

func lookupCommand(s *Session, name string) (*Command, error) {
	cmd, ok := s.registry.Resolve(name)
	if !ok {
		return nil, usage.UnknownCommand(name, FindSimilarCommands(name, s.registry, defaultSuggestionsCount)...)
	}
	return cmd, nil
}

func helpAction(s *Session, args Args) error {
	name := args.String(0)
	if name == "" {
		_, _ = s.out.Println(s.styler.Header("commands:"))
		_, _ = s.out.Println(s.help.SummaryTable())
		_, _ = s.out.Println()
		_, _ = s.out.Println(s.styler.Muted("See 'help <command>' for details on a specific command."))
		return nil
	}

	cmd, err := lookupCommand(s, name)
	if err != nil {
		return err
	}
	_, _ = s.out.Println(s.help.FullHelp(cmd))
	return nil
}

func usageAction(s *Session, args Args) error {
	cmd, err := lookupCommand(s, args.String(0))
	if err != nil {
		return err
	}
	_, _ = s.out.Println(s.help.Usage(cmd))
	return nil
}

func exitAction(s *Session, _ Args) error {
	s.Stop()
	return nil
}

func historyAction(s *Session, args Args) error {
	if s.history == nil {
		_, _ = s.out.Println("history is disabled")
		return nil
	}

	count := args.Int(0)
	if count < 0 {
		return errors.New("count must not be negative")
	}
	if count == 0 {
		count = s.historyLimit
	}

	entries, err := s.history.Recent(count)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	for i, e := range entries {
		_, _ = s.out.Printf("%4d  %s\n", i+1, e.Line)
	}
	return nil
}
