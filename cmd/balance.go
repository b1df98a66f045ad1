package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fxtae/journal"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// balanceCmd shows or adjusts the account balances.
type balanceCmd struct {
	set   string
	clear bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show or adjust the account balances" }
func (*balanceCmd) Usage() string {
	return `fxj balance [-set <amount>] [-clear]

  Shows the starting and current account balance. The current balance is
  always the starting balance plus the sum of all trade P&L.

  With -set, updates the starting balance. With -clear, erases all trades
  and dreams and resets the journal to the configured starting balance.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New starting balance")
	f.BoolVar(&c.clear, "clear", false, "Erase all records and reset the journal")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if c.clear {
		starting := decimal.NewFromFloat(a.cfg.Account.StartingBalance)
		err := a.store.ClearAll(starting)
		if journal.IsPersistenceWarning(err) {
			warn(err)
		} else if err != nil {
			return fail(err)
		}
		fmt.Printf("Journal cleared. Starting balance reset to %s\n", a.fmt.Money(starting))
		return subcommands.ExitSuccess
	}

	if c.set != "" {
		v, err := decimal.NewFromString(c.set)
		if err != nil {
			return fail(fmt.Errorf("invalid amount %q: %w", c.set, err))
		}
		err = a.store.SetStartingBalance(v)
		if journal.IsPersistenceWarning(err) {
			warn(err)
		} else if err != nil {
			return fail(err)
		}
	}

	trades := a.store.Trades()
	fmt.Printf("Starting balance: %s\n", a.fmt.Money(a.store.StartingBalance()))
	fmt.Printf("Account balance:  %s\n", a.fmt.Money(a.store.AccountBalance()))
	fmt.Printf("Net P&L:          %s over %d trades\n", a.fmt.SignedMoney(journal.NetPnL(trades)), len(trades))
	return subcommands.ExitSuccess
}
