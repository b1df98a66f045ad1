package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fxtae/journal"
	"github.com/google/subcommands"
)

// editCmd replaces the fields of an existing trade.
type editCmd struct {
	trade tradeFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing trade" }
func (*editCmd) Usage() string {
	return `fxj edit <id> -t <time> -pair <pair> -strategy <strategy> -pnl <amount> [-d <date>] [-n <1-4>] [-notes <text>]

  Replaces all fields of the trade with the given id. Use 'fxj log' to find
  trade ids.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.trade.register(f) }

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one trade id")
		return subcommands.ExitUsageError
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	cand, err := c.trade.candidate()
	if err != nil {
		return fail(err)
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	t, err := a.store.UpdateTrade(id, cand)
	if journal.IsPersistenceWarning(err) {
		warn(err)
	} else if err != nil {
		return fail(err)
	}

	fmt.Printf("Updated trade %d: %s %s %s\n", t.ID, t.Pair, t.Strategy, a.fmt.SignedMoney(t.PnL))
	return subcommands.ExitSuccess
}
