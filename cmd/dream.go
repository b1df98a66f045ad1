package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fxtae/journal"
	"github.com/google/subcommands"
)

// dreamCmd records, edits, or removes a dream note.
type dreamCmd struct {
	edit   int64
	remove int64
}

func (*dreamCmd) Name() string     { return "dream" }
func (*dreamCmd) Synopsis() string { return "record, edit, or remove a dream note" }
func (*dreamCmd) Usage() string {
	return `fxj dream <content...>
fxj dream -edit <id> <content...>
fxj dream -rm <id>

  Records a dream or goal note dated today. With -edit, replaces the content
  of an existing note in place, keeping its id and date. With -rm, deletes
  the note.
`
}

func (c *dreamCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.edit, "edit", 0, "Id of the dream to edit in place")
	f.Int64Var(&c.remove, "rm", 0, "Id of the dream to remove")
}

func (c *dreamCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if c.remove != 0 {
		err := a.store.RemoveDream(c.remove)
		if journal.IsPersistenceWarning(err) {
			warn(err)
		} else if err != nil {
			return fail(err)
		}
		fmt.Printf("Removed dream %d\n", c.remove)
		return subcommands.ExitSuccess
	}

	content := strings.Join(f.Args(), " ")
	if content == "" {
		fmt.Fprintln(os.Stderr, "Error: dream content is required")
		return subcommands.ExitUsageError
	}

	if c.edit != 0 {
		d, err := a.store.UpdateDream(c.edit, content)
		if journal.IsPersistenceWarning(err) {
			warn(err)
		} else if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated dream %d\n", d.ID)
		return subcommands.ExitSuccess
	}

	d, err := a.store.AddDream(content)
	if journal.IsPersistenceWarning(err) {
		warn(err)
	} else if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded dream %d\n", d.ID)
	return subcommands.ExitSuccess
}

// dreamsCmd lists dream notes or renders the dreams report.
type dreamsCmd struct {
	report bool
}

func (*dreamsCmd) Name() string     { return "dreams" }
func (*dreamsCmd) Synopsis() string { return "list recorded dreams" }
func (*dreamsCmd) Usage() string {
	return `fxj dreams [-report]

  Lists dreams newest first, with their ids. With -report, renders the full
  dreams report instead.
`
}

func (c *dreamsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.report, "report", false, "Render the dreams report")
}

func (c *dreamsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if c.report {
		return renderDocument(a, journal.ScopeDreams)
	}

	dreams := a.store.Dreams()
	if len(dreams) == 0 {
		fmt.Println("No dreams recorded yet.")
		return subcommands.ExitSuccess
	}
	for _, d := range dreams {
		fmt.Printf("%8d  %s  %s\n", d.ID, d.Date, d.Content)
	}
	return subcommands.ExitSuccess
}
