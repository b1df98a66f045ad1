package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/date"
	"github.com/fxtae/journal/renderer"
	"github.com/google/subcommands"
)

// exportCmd writes a report or the raw data to a file.
type exportCmd struct {
	scope  string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a report or the journal data to a file" }
func (*exportCmd) Usage() string {
	return `fxj export [-scope <scope>] [-format md|html|csv|json] [-o <file>]

  Exports a report document (md, html) or the raw journal data (csv for
  trades, json for a full backup). Scopes: today, weekly, monthly, journal,
  analytics, dashboard, dreams, backup.

  The default output file is <scope>-<date>.<ext> in the working directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "scope", "journal", "Report scope to export")
	f.StringVar(&c.format, "format", "md", "Export format (md, html, csv, json)")
	f.StringVar(&c.output, "o", "", "Output file, defaults to <scope>-<date>.<ext>")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	scope, err := journal.ParseScope(c.scope)
	if err != nil {
		return fail(err)
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	filename := c.output
	if filename == "" {
		filename = scope.Filename(date.Today(), c.format)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fail(fmt.Errorf("cannot create %s: %w", filename, err))
	}
	defer out.Close()

	trades := a.store.Trades()
	dreams := a.store.Dreams()

	switch c.format {
	case "csv":
		err = journal.ExportTradesCSV(out, trades)
	case "json":
		err = journal.ExportBackup(out, trades, dreams, a.store.StartingBalance())
	case "md", "html":
		doc := journal.Compose(scope, trades, dreams, a.store.StartingBalance(), a.fmt, time.Now())
		if c.format == "html" {
			var page string
			page, err = renderer.HTML(doc)
			if err == nil {
				_, err = out.WriteString(page)
			}
		} else {
			_, err = out.WriteString(renderer.Markdown(doc))
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Exported %s to %s\n", scope, filename)
	return subcommands.ExitSuccess
}
