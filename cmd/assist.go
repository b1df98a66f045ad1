package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fxtae/journal"
	"github.com/fxtae/journal/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.0-flash"

// assistCmd asks the AI assistant a question about the journal.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your trading performance" }
func (*assistCmd) Usage() string {
	return `fxj assist <question...>

  Sends the question to the assistant together with your analytics report so
  the answer is grounded in your actual trading history. Requires a Gemini
  API key in the environment.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a question is required")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	report := renderer.Markdown(journal.AnalyticsReport(a.store.Trades(), a.store.StartingBalance(), a.fmt, time.Now()))

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: "You are a trading performance coach. " +
			"Answer using the trader's analytics report below. Be concrete and concise.\n\n" + report}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting assistant session:", err)
		return subcommands.ExitFailure
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		fmt.Fprintln(os.Stderr, "Assistant returned no answer")
		return subcommands.ExitFailure
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			printMarkdown(part.Text)
		}
	}
	return subcommands.ExitSuccess
}
