package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fxtae/journal"
	"github.com/google/subcommands"
)

// rmCmd deletes a trade.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a trade" }
func (*rmCmd) Usage() string {
	return `fxj rm <id>

  Removes the trade with the given id. Use 'fxj log' to find trade ids.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	err = a.store.RemoveTrade(id)
	if journal.IsPersistenceWarning(err) {
		warn(err)
	} else if err != nil {
		return fail(err)
	}

	fmt.Printf("Removed trade %d\n", id)
	fmt.Printf("Account balance: %s\n", a.fmt.Money(a.store.AccountBalance()))
	return subcommands.ExitSuccess
}
