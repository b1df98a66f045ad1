package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/date"
	"github.com/google/subcommands"
)

// logCmd lists recorded trades.
type logCmd struct {
	on    string
	since int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list recorded trades" }
func (*logCmd) Usage() string {
	return `fxj log [-d <date>] [-since <days>]

  Lists trades newest first, with their ids. Filter to a single day with -d
  or to the last n days with -since.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Only list trades on this date (YYYY-MM-DD)")
	f.IntVar(&c.since, "since", 0, "Only list trades from the last n days")
}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	trades := a.store.Trades()
	if c.on != "" {
		d, err := date.Parse(c.on)
		if err != nil {
			return fail(err)
		}
		trades = journal.FilterOn(trades, d)
	} else if c.since > 0 {
		trades = journal.FilterSince(trades, date.Today().Add(-c.since))
	}

	if len(trades) == 0 {
		fmt.Println("No trades found.")
		return subcommands.ExitSuccess
	}
	for _, t := range trades {
		fmt.Printf("%8d  %s %s  Trade %d  %-10s %-20s %12s  %s\n",
			t.ID, t.Date, t.Time, t.TradeNumber, t.Pair, t.Strategy,
			a.fmt.SignedMoney(t.PnL), t.Notes)
	}
	fmt.Printf("\n%d trades, net P&L %s\n", len(trades), a.fmt.SignedMoney(journal.NetPnL(trades)))
	return subcommands.ExitSuccess
}
