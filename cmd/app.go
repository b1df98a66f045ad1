// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/fxtae/journal"
	"github.com/fxtae/journal/config"
	"github.com/fxtae/journal/kv"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "trades")
	c.Register(&editCmd{}, "trades")
	c.Register(&rmCmd{}, "trades")
	c.Register(&logCmd{}, "trades")

	c.Register(&dreamCmd{}, "dreams")
	c.Register(&dreamsCmd{}, "dreams")

	c.Register(&balanceCmd{}, "account")

	c.Register(newReportCmd(journal.ScopeToday), "reports")
	c.Register(newReportCmd(journal.ScopeWeekly), "reports")
	c.Register(newReportCmd(journal.ScopeMonthly), "reports")
	c.Register(newReportCmd(journal.ScopeJournal), "reports")
	c.Register(newReportCmd(journal.ScopeAnalytics), "reports")
	c.Register(newReportCmd(journal.ScopeDashboard), "reports")
	c.Register(&tradeCmd{}, "reports")

	c.Register(&chartsCmd{}, "charts")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", config.DefaultPath(), "Path to the configuration file")
var dbPath = flag.String("db", "", "Path to the journal database, overrides the configuration")
var verbose = flag.Bool("v", false, "Enable debug logging")

// newLogger builds the console logger every command shares.
func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// app bundles everything a command execution needs.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *journal.Store
	fmt   journal.Formatter
	db    kv.Store
}

// openApp loads the configuration, opens the persistence backend and loads
// the journal. Persistence warnings during load are logged, not fatal.
func openApp() (*app, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	log := newLogger()

	var db kv.Store
	switch {
	case *dbPath != "":
		db, err = kv.OpenSQLite(*dbPath)
	case cfg.Storage.Backend == "memory":
		db, err = kv.NewMemory(), nil
	default:
		db, err = kv.OpenSQLite(cfg.Storage.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open journal database: %w", err)
	}

	store := journal.NewStore(db, log)
	if err := store.Load(); err != nil {
		warn(err)
	}
	return &app{
		cfg:   cfg,
		log:   log,
		store: store,
		fmt:   journal.NewFormatter(cfg.Currency),
		db:    db,
	}, nil
}

// Close releases the persistence backend.
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn().Err(err).Msg("could not close journal database")
	}
}

// fail prints the error and returns the matching exit status. Validation
// errors are usage errors, everything else is a plain failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// warn surfaces a non-fatal error, typically a *journal.PersistenceError
// after a mutation that already took effect in memory.
func warn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// parseID parses a record id given as a command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(mdText string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(mdText)
		return
	}
	out, err := r.Render(mdText)
	if err != nil {
		fmt.Print(mdText)
		return
	}
	fmt.Print(out)
}
