package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/renderer"
	"github.com/google/subcommands"
)

// reportCmd renders one report scope to the terminal. Every scope shares the
// same lifecycle, so a single command type serves them all.
type reportCmd struct {
	scope journal.Scope
}

func newReportCmd(scope journal.Scope) *reportCmd {
	return &reportCmd{scope: scope}
}

func (c *reportCmd) Name() string { return c.scope.String() }

func (c *reportCmd) Synopsis() string {
	switch c.scope {
	case journal.ScopeToday:
		return "display today's trading summary"
	case journal.ScopeWeekly:
		return "display the last 7 days of trading"
	case journal.ScopeMonthly:
		return "display the last 30 days of trading"
	case journal.ScopeJournal:
		return "display the complete trading journal"
	case journal.ScopeAnalytics:
		return "display performance analytics and recommendations"
	case journal.ScopeDashboard:
		return "display the full dashboard snapshot"
	default:
		return "display a report"
	}
}

func (c *reportCmd) Usage() string {
	return fmt.Sprintf(`fxj %s

  %s.
`, c.scope, c.Synopsis())
}

func (*reportCmd) SetFlags(*flag.FlagSet) {}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()
	return renderDocument(a, c.scope)
}

// renderDocument composes the scope's document and prints it as terminal
// markdown.
func renderDocument(a *app, scope journal.Scope) subcommands.ExitStatus {
	doc := journal.Compose(scope, a.store.Trades(), a.store.Dreams(), a.store.StartingBalance(), a.fmt, time.Now())
	printMarkdown(renderer.Markdown(doc))
	return subcommands.ExitSuccess
}

// tradeCmd renders the detail view of a single trade.
type tradeCmd struct{}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "display the detail view of one trade" }
func (*tradeCmd) Usage() string {
	return `fxj trade <id>

  Displays the full detail of the trade with the given id.
`
}

func (*tradeCmd) SetFlags(*flag.FlagSet) {}

func (c *tradeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one trade id")
		return subcommands.ExitUsageError
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	t, err := a.store.Trade(id)
	if err != nil {
		return fail(err)
	}
	doc := journal.TradeReport(t, a.store.StartingBalance(), a.fmt, time.Now())
	printMarkdown(renderer.Markdown(doc))
	return subcommands.ExitSuccess
}
