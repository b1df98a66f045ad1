package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// tradeFlags holds the flags shared between 'add' and 'edit'.
type tradeFlags struct {
	date        string
	time        string
	tradeNumber int
	pair        string
	strategy    string
	pnl         string
	notes       string
}

func (c *tradeFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&c.time, "t", "", "Trade time (HH:MM)")
	f.IntVar(&c.tradeNumber, "n", 1, "Trade number within the day (1-4)")
	f.StringVar(&c.pair, "pair", "", "Currency pair, e.g. EUR/USD")
	f.StringVar(&c.strategy, "strategy", "", "Strategy used for the trade")
	f.StringVar(&c.pnl, "pnl", "", "Profit or loss amount, e.g. 120.50 or -80")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

// candidate converts the parsed flags into a trade candidate.
func (c *tradeFlags) candidate() (journal.TradeCandidate, error) {
	var cand journal.TradeCandidate

	cand.Date = date.Today()
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			return cand, fmt.Errorf("invalid date: %w", err)
		}
		cand.Date = d
	}
	if c.time != "" {
		t, err := date.ParseClock(c.time)
		if err != nil {
			return cand, fmt.Errorf("invalid time: %w", err)
		}
		cand.Time = t
	}
	pnl, err := decimal.NewFromString(c.pnl)
	if err != nil {
		return cand, fmt.Errorf("invalid pnl %q: %w", c.pnl, err)
	}

	cand.TradeNumber = c.tradeNumber
	cand.Pair = c.pair
	cand.Strategy = c.strategy
	cand.PnL = pnl
	cand.Notes = c.notes
	return cand, nil
}

// addCmd records a new trade.
type addCmd struct {
	trade tradeFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new trade" }
func (*addCmd) Usage() string {
	return `fxj add -t <time> -pair <pair> -strategy <strategy> -pnl <amount> [-d <date>] [-n <1-4>] [-notes <text>]

  Records a trade. At most 4 trades can be recorded per day.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.trade.register(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cand, err := c.trade.candidate()
	if err != nil {
		return fail(err)
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	t, err := a.store.AddTrade(cand)
	if journal.IsPersistenceWarning(err) {
		warn(err)
	} else if err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded trade %d: %s %s %s\n", t.ID, t.Pair, t.Strategy, a.fmt.SignedMoney(t.PnL))
	fmt.Printf("Account balance: %s\n", a.fmt.Money(a.store.AccountBalance()))
	return subcommands.ExitSuccess
}
