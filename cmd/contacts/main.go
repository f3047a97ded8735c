package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/dashboard"
	"github.com/smileynet/contacts/internal/logging"
	"github.com/smileynet/contacts/internal/prefs"
	"github.com/smileynet/contacts/internal/source"
	"github.com/smileynet/contacts/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Browse  BrowseCmd        `cmd:"" default:"withargs" help:"Browse contacts interactively (default)."`
	List    ListCmd          `cmd:"" help:"Print contacts as plain text."`
	Theme   ThemeCmd         `cmd:"" help:"Show or set the saved color theme."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// setup loads and validates config, applies an endpoint override, and
// opens the logger. Every failure here is a setup error.
func setup(endpoint string) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, setupErr(err)
	}
	if endpoint != "" {
		cfg.Source.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, setupErr(err)
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, setupErr(err)
	}
	return cfg, logger, nil
}

// newFetcher builds the remote fetcher on the default HTTP client: one
// attempt per load cycle, bounded only by the transport.
func newFetcher(cfg *config.Config) *source.HTTPFetcher {
	return source.NewHTTPFetcher(cfg.Source.Endpoint, source.WithUserAgent(cfg.Source.UserAgent))
}

// newResolver wires the HTTP fetcher and the seed fallback.
func newResolver(cfg *config.Config, logger *zap.Logger) *source.Resolver {
	return source.NewResolver(newFetcher(cfg), source.WithLogger(logger))
}

// --- Browse command ---

// BrowseCmd opens the interactive directory.
type BrowseCmd struct {
	Endpoint string `help:"Contact source URL (overrides config)."`
	Theme    string `help:"Start in this theme without saving it." enum:"system,dark,light" default:"system"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the directory TUI.
func (b *BrowseCmd) Run() error {
	if !tui.IsTTY(os.Stdout) {
		return b.run(false, nil)
	}

	cfg, logger, err := setup(b.Endpoint)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := prefs.NewFileStore(cfg.Prefs.Path)
	saver := func(dark bool) error {
		if err := prefs.SaveTheme(store, dark); err != nil {
			logger.Warn("theme not saved", zap.String("path", store.Path()), zap.Error(err))
			return err
		}
		return nil
	}

	m := dashboard.NewModel(
		dashboard.WithResolver(newResolver(cfg, logger)),
		dashboard.WithThemeSaver(saver),
		dashboard.WithDark(b.initialTheme(store, lipgloss.HasDarkBackground)),
	)

	prog := tea.NewProgram(m, tea.WithAltScreen())
	return b.run(true, prog)
}

// initialTheme applies the --theme override, falling back to the saved
// preference and then the terminal background.
func (b *BrowseCmd) initialTheme(store prefs.Store, systemDark func() bool) bool {
	switch b.Theme {
	case prefs.ThemeDark:
		return true
	case prefs.ThemeLight:
		return false
	}
	return prefs.LoadTheme(store, systemDark)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return setupErr(fmt.Errorf("browse: requires a terminal (TTY); use 'contacts list' instead"))
	}
	_, err := prog.Run()
	return err
}

// --- List command ---

// ListCmd prints the resolved, filtered collection one contact per line.
type ListCmd struct {
	Query    string `arg:"" optional:"" help:"Case-insensitive substring to filter by."`
	Endpoint string `help:"Contact source URL (overrides config)."`
}

// Run resolves contacts once and prints them.
func (l *ListCmd) Run() error {
	cfg, logger, err := setup(l.Endpoint)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return l.run(ctx, os.Stdout, os.Stderr, newResolver(cfg, logger))
}

func (l *ListCmd) run(ctx context.Context, out, notes io.Writer, r dashboard.Resolver) error {
	res := r.Resolve(ctx)
	if err := tui.NewPlainDisplay(out, notes).Render(contact.Filter(res.Contacts, l.Query), res.Fallback); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// --- Theme command ---

// ThemeCmd shows or changes the saved theme preference.
type ThemeCmd struct {
	Value string `arg:"" optional:"" enum:"show,dark,light,toggle" default:"show" help:"One of show, dark, light, toggle."`
}

// Run opens the preference store named by config.
func (c *ThemeCmd) Run() error {
	cfg, logger, err := setup("")
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return c.run(os.Stdout, prefs.NewFileStore(cfg.Prefs.Path), lipgloss.HasDarkBackground)
}

func (c *ThemeCmd) run(w io.Writer, store prefs.Store, systemDark func() bool) error {
	dark := prefs.LoadTheme(store, systemDark)
	switch c.Value {
	case "show", "":
		_, _ = fmt.Fprintln(w, prefs.ThemeName(dark))
		return nil
	case "toggle":
		dark = !dark
	default:
		dark = c.Value == prefs.ThemeDark
	}
	if err := prefs.SaveTheme(store, dark); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	_, _ = fmt.Fprintln(w, prefs.ThemeName(dark))
	return nil
}

// --- Exit codes ---

const (
	exitSuccess = 0
	exitFailure = 1
	exitSetup   = 2
)

// setupError marks failures that happen before any command work starts:
// config, logging, and terminal checks.
type setupError struct{ err error }

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

func setupErr(err error) error { return &setupError{err: err} }

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitFailure
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("A contact directory for the terminal."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
