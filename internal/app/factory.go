// Package app wires configuration, logging, styling, history and
// documentation into a session.
package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/repl/internal/config"
	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/docs"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/paths"
	"github.com/footprint-tools/repl/internal/store"
	"github.com/footprint-tools/repl/internal/ui"
	"github.com/footprint-tools/repl/internal/ui/prompt"
	"github.com/footprint-tools/repl/internal/ui/style"
	"github.com/spf13/afero"
)

// historyKeep bounds the history table; older rows are pruned on startup.
const historyKeep = 1000

// Options configures the application factory.
type Options struct {
	// Style options
	StyleEnabled bool

	// DocsPaths are loaded after the docs_path config entries.
	DocsPaths []string

	// NoHistory disables the history store regardless of config.
	NoHistory bool

	// Overrides for tests; empty means the platform default.
	LogPath     string
	HistoryPath string
	Fs          afero.Fs
	Output      io.Writer
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{StyleEnabled: true}
}

// Application holds the wired dependencies of one process.
type Application struct {
	Config   domain.ConfigProvider
	Settings map[string]string
	Logger   domain.Logger
	Output   *ui.Writer
	Styler   domain.Styler
	History  domain.HistoryStore // nil when disabled
	Docs     *docs.Provider
}

// New creates an Application. Documentation that cannot be loaded is an
// error; an unavailable log file or history database only disables that
// feature.
func New(opts Options) (*Application, error) {
	cfg := config.NewProvider()
	settings, err := cfg.GetAll()
	if err != nil {
		log.Warn("app: could not read config, using defaults: %v", err)
	}

	logger := newLogger(opts, settings)

	style.Init(opts.StyleEnabled, settings)

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	provider, err := docs.NewProvider(fs, docSources(settings, opts.DocsPaths)...)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	out := ui.NewWriter()
	if opts.Output != nil {
		out = ui.NewWriterTo(opts.Output)
	}

	return &Application{
		Config:   cfg,
		Settings: settings,
		Logger:   logger,
		Output:   out,
		Styler:   style.NewStyler(),
		History:  newHistory(opts, settings, logger),
		Docs:     provider,
	}, nil
}

func newLogger(opts Options, settings map[string]string) domain.Logger {
	if !config.Bool(settings, domain.KeyEnableLog) {
		return log.NopLogger{}
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}

	l, err := log.New(logPath, log.ParseLevel(settings[domain.KeyLogLevel]))
	if err != nil {
		return log.NopLogger{}
	}
	log.SetDefault(l)
	return l
}

func newHistory(opts Options, settings map[string]string, logger domain.Logger) domain.HistoryStore {
	if opts.NoHistory || !config.Bool(settings, domain.KeyHistory) {
		return nil
	}

	dbPath := opts.HistoryPath
	if dbPath == "" {
		dbPath = paths.HistoryDBPath()
	}

	s, err := store.New(dbPath)
	if err != nil {
		logger.Warn("history disabled: %v", err)
		return nil
	}
	if n, err := s.Prune(historyKeep); err != nil {
		logger.Warn("history: prune failed: %v", err)
	} else if n > 0 {
		logger.Debug("history: pruned %d old lines", n)
	}
	return s
}

// docSources turns the configured and requested paths into sources named
// after their files.
func docSources(settings map[string]string, extra []string) []docs.Source {
	all := append(config.List(settings, domain.KeyDocsPath), extra...)

	sources := make([]docs.Source, 0, len(all))
	for _, p := range all {
		name := filepath.Base(p)
		sources = append(sources, docs.Source{
			Owner: strings.TrimSuffix(name, filepath.Ext(name)),
			Path:  p,
		})
	}
	return sources
}

// NewReader picks the line editor for an interactive terminal and a plain
// scanner otherwise. The editor is seeded with the stored history.
func (a *Application) NewReader(in *os.File) domain.LineReader {
	if !ui.IsTerminal(in) || !a.Output.IsTerminal() {
		return prompt.NewScanner(in)
	}

	var lines []string
	if a.History != nil {
		var err error
		if lines, err = a.History.Lines(historyKeep); err != nil {
			a.Logger.Warn("history: could not load lines: %v", err)
		}
	}
	return prompt.NewInteractive(lines)
}

// NewSession creates a session for target using the application's
// dependencies. hostDocs take precedence over documentation loaded from
// files.
func (a *Application) NewSession(target dispatchers.Target, reader domain.LineReader, hostDocs ...*docs.Provider) (*dispatchers.Session, error) {
	provider := docs.Merge(append(hostDocs, a.Docs)...)

	opts := []dispatchers.Option{
		dispatchers.WithReader(reader),
		dispatchers.WithOutput(a.Output),
		dispatchers.WithStyler(a.Styler),
		dispatchers.WithLogger(a.Logger),
		dispatchers.WithDocs(provider),
	}
	if p, ok := a.Settings[domain.KeyPrompt]; ok {
		opts = append(opts, dispatchers.WithPrompt(p))
	}
	if a.History != nil {
		opts = append(opts, dispatchers.WithHistory(a.History, config.Int(a.Settings, domain.KeyHistoryLimit)))
	}

	return dispatchers.NewSession(target, opts...)
}

// NewForTesting creates an Application writing to out, with no logging,
// history or styling.
func NewForTesting(out io.Writer) *Application {
	return &Application{
		Config:   config.NewProvider(),
		Settings: map[string]string{},
		Logger:   log.NopLogger{},
		Output:   ui.NewWriterTo(out),
		Styler:   style.NopStyler{},
		Docs:     docs.Empty(),
	}
}

// Close cleans up application resources.
func (a *Application) Close() error {
	if a.History != nil {
		_ = a.History.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	return nil
}
