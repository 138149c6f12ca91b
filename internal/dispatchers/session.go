package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/footprint-tools/repl/internal/convert"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/ui"
	"github.com/footprint-tools/repl/internal/ui/prompt"
	"github.com/footprint-tools/repl/internal/ui/style"
	"github.com/footprint-tools/repl/internal/usage"
	"github.com/google/uuid"
)

const defaultPrompt = "> "

// defaultHistoryLimit applies when WithHistory is given a limit below one.
const defaultHistoryLimit = 20

// Session runs the read-dispatch loop for one dispatch target. It is
// single-threaded: Run, Execute and the handlers they call must not be used
// concurrently.
type Session struct {
	id         string
	registry   *Registry
	help       *Help
	converters convert.Registry

	in      domain.LineReader
	out     domain.OutputWriter
	styler  domain.Styler
	logger  domain.Logger
	history domain.HistoryStore

	docs         *docs.Provider
	historyLimit int
	prompt       string
	alive        bool
}

// Option configures a Session.
type Option func(*Session)

// WithReader sets the input source. Defaults to stdin.
func WithReader(r domain.LineReader) Option {
	return func(s *Session) { s.in = r }
}

// WithOutput sets the stream for command output and diagnostics. Defaults
// to stdout.
func WithOutput(w domain.OutputWriter) Option {
	return func(s *Session) { s.out = w }
}

// WithDocs sets the host documentation. Built-in command docs are merged
// in after it.
func WithDocs(p *docs.Provider) Option {
	return func(s *Session) { s.docs = p }
}

// WithStyler sets the styler used for help and diagnostics.
func WithStyler(st domain.Styler) Option {
	return func(s *Session) { s.styler = st }
}

// WithLogger sets the session logger.
func WithLogger(l domain.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithHistory records every executed line in h. limit is the number of
// lines the history command shows by default.
func WithHistory(h domain.HistoryStore, limit int) Option {
	return func(s *Session) {
		s.history = h
		s.historyLimit = limit
		if limit < 1 {
			s.historyLimit = defaultHistoryLimit
		}
	}
}

// WithPrompt sets the prompt shown before each line.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession builds (or reuses) the registry of target, binds it to the
// target's own handlers and prepares a session in the stopped state.
func NewSession(target Target, opts ...Option) (*Session, error) {
	shape, err := RegistryFor(target)
	if err != nil {
		return nil, err
	}
	reg, err := shape.Bind(target)
	if err != nil {
		return nil, err
	}

	base, err := builtinDocs()
	if err != nil {
		return nil, err
	}

	s := &Session{
		registry:   reg,
		converters: convert.NewRegistry(),
		prompt:     defaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.in == nil {
		s.in = prompt.NewScanner(os.Stdin)
	}
	if s.out == nil {
		s.out = ui.NewWriter()
	}
	if s.styler == nil {
		s.styler = style.NopStyler{}
	}
	if s.logger == nil {
		s.logger = log.NopLogger{}
	}
	if l, ok := s.logger.(*log.Logger); ok && l != nil {
		s.logger = l.With("session", s.id)
	}

	s.help = NewHelp(reg, docs.Merge(s.docs, base), s.styler)
	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Registry returns the session's command registry.
func (s *Session) Registry() *Registry { return s.registry }

// Help returns the session's help formatter.
func (s *Session) Help() *Help { return s.help }

// Out returns the output stream handlers should write to.
func (s *Session) Out() domain.OutputWriter { return s.out }

// Styler returns the session styler.
func (s *Session) Styler() domain.Styler { return s.styler }

// Alive reports whether the loop is running.
func (s *Session) Alive() bool { return s.alive }

// Stop ends the loop after the current line.
func (s *Session) Stop() {
	s.alive = false
}

// RegisterConverter installs fn for parameters of type t. It replaces any
// earlier converter for t and is consulted only after the built-in
// conversion fails.
func (s *Session) RegisterConverter(t convert.Type, fn convert.CastFunc) {
	s.converters.Register(t, fn)
}

// Run reads and executes lines until exit is called or input ends. End of
// input is not an error.
func (s *Session) Run() error {
	s.alive = true
	s.logger.Info("session started")
	defer s.logger.Info("session stopped")

	for s.alive {
		line, err := s.in.ReadLine(s.prompt)
		if err != nil {
			s.alive = false
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		_ = s.Execute(line)
	}
	return nil
}

// Execute dispatches one line and reports any failure to the output
// stream. The returned error is the reported one; the session keeps
// running regardless.
func (s *Session) Execute(line string) error {
	res, err := Dispatch(s.registry, s.converters, Tokenize(line))
	if err == nil {
		err = invoke(s, res)
	}

	s.report(res, err)
	s.record(line, res, err)
	return err
}

func (s *Session) report(res Resolution, err error) {
	if err == nil {
		return
	}
	_, _ = s.out.Println(s.styler.Error(err.Error()))
	if usage.IsArgumentError(err) && res.Command != nil {
		_, _ = s.out.Println("usage: " + s.help.Usage(res.Command))
	}
}

func outcomeOf(err error) domain.Outcome {
	switch {
	case err == nil:
		return domain.OutcomeOK
	case usage.KindOf(err) == usage.ErrUnknownCommand:
		return domain.OutcomeNotFound
	case usage.IsArgumentError(err):
		return domain.OutcomeArgumentError
	default:
		return domain.OutcomeFailed
	}
}

func (s *Session) record(line string, res Resolution, err error) {
	outcome := outcomeOf(err)
	if err != nil {
		s.logger.Warn("line %q: %s: %v", line, outcome, err)
	} else {
		s.logger.Debug("line %q: %s", line, outcome)
	}

	if s.history == nil || len(Tokenize(line)) == 0 {
		return
	}

	entry := domain.HistoryEntry{
		SessionID: s.id,
		Line:      line,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}
	if res.Command != nil {
		entry.Command = res.Command.Name
	}
	if err := s.history.Append(entry); err != nil {
		s.logger.Warn("history: could not record line: %v", err)
	}
}
