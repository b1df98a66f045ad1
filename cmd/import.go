package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fxtae/journal"
	"github.com/google/subcommands"
)

// importCmd reads trades or a full backup back into the journal.
type importCmd struct {
	format string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades or a backup from a file" }
func (*importCmd) Usage() string {
	return `fxj import [-format csv|json] <file>

  With csv, adds the trades in the file through normal validation, including
  the per-day limit. With json, replaces the whole journal with the backup
  in the file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Import format (csv, json)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	switch c.format {
	case "csv":
		candidates, err := journal.ImportTradesCSV(in)
		if err != nil {
			return fail(err)
		}
		added, skipped := 0, 0
		for _, cand := range candidates {
			_, err := a.store.AddTrade(cand)
			switch {
			case journal.IsPersistenceWarning(err):
				warn(err)
				added++
			case errors.Is(err, journal.ErrDailyLimit):
				skipped++
			case err != nil:
				return fail(err)
			default:
				added++
			}
		}
		fmt.Printf("Imported %d trades", added)
		if skipped > 0 {
			fmt.Printf(", skipped %d over the daily limit", skipped)
		}
		fmt.Println()

	case "json":
		b, err := journal.ImportBackup(in)
		if err != nil {
			return fail(err)
		}
		err = a.store.Restore(b)
		if journal.IsPersistenceWarning(err) {
			warn(err)
		} else if err != nil {
			return fail(err)
		}
		fmt.Printf("Restored %d trades and %d dreams from backup\n", len(b.Trades), len(b.Dreams))

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown import format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Account balance: %s\n", a.fmt.Money(a.store.AccountBalance()))
	return subcommands.ExitSuccess
}
