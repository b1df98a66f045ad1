package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/date"
	"github.com/google/subcommands"
)

// chartsCmd prints chart data series for external plotting tools.
type chartsCmd struct {
	kind   string
	window string
	asJSON bool
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "print chart data series" }
func (*chartsCmd) Usage() string {
	return `fxj charts [-kind equity|outcomes|winloss|profitfactor] [-w 7d|1m|12m] [-json]

  Prints the labeled point series behind each dashboard chart. The -w window
  applies to the equity curve only. With -json, prints the series as a JSON
  object for external plotting tools.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "equity", "Chart to print (equity, outcomes, winloss, profitfactor)")
	f.StringVar(&c.window, "w", "7d", "Equity window (7d, 1m, 12m)")
	f.BoolVar(&c.asJSON, "json", false, "Print the series as JSON")
}

func (c *chartsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	trades := a.store.Trades()
	today := date.Today()

	var series journal.Series
	switch c.kind {
	case "equity":
		w, err := journal.ParseEquityWindow(c.window)
		if err != nil {
			return fail(err)
		}
		series = journal.EquityChart(trades, a.store.StartingBalance(), w, today)
	case "outcomes":
		series = journal.OutcomeChart(trades)
	case "winloss":
		series = journal.WinLossChart(trades)
	case "profitfactor":
		series = journal.ProfitFactorChart(trades, today)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Labels []string  `json:"labels"`
			Values []float64 `json:"values"`
		}{series.Labels, series.Values}); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	for i, label := range series.Labels {
		fmt.Printf("%-24s %12.2f\n", label, series.Values[i])
	}
	return subcommands.ExitSuccess
}
