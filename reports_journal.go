package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalReport is the full-journal document: account summary, lifetime
// metrics, and every recorded trade.
func JournalReport(trades []TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	accountBalance := startingBalance.Add(NetPnL(trades))

	doc := &Document{
		Title:       "Complete Trading Journal - All Trades",
		GeneratedAt: now,
		Footer:      "This journal contains your complete trading history. Review regularly to identify patterns and improve performance.",
	}

	summary := doc.Section("Account Summary")
	summary.Add("Current Balance", f.Money(accountBalance))
	summary.Add("Starting Balance", f.Money(startingBalance))
	summary.Add("Total Growth", f.Money(NetPnL(trades)))
	summary.Add("Growth %", growthPercent(trades, startingBalance))
	summary.Add("Total Trades", fmt.Sprintf("%d", len(trades)))

	wins, losses, breakEven := CountOutcomes(trades)
	metrics := doc.Section("Performance Metrics")
	metrics.Add("Winning Trades", fmt.Sprintf("%d", wins))
	metrics.Add("Losing Trades", fmt.Sprintf("%d", losses))
	metrics.Add("Break Even Trades", fmt.Sprintf("%d", breakEven))
	metrics.Add("Win Rate", percent(WinRate(trades)))
	metrics.Add("Total Profit", f.Money(GrossProfit(trades)))
	metrics.Add("Total Loss", f.Money(GrossLoss(trades)))
	metrics.Add("Net Profit", f.Money(NetPnL(trades)))
	metrics.Add("Profit Factor", ratio(ProfitFactor(trades)))

	list := doc.Section(fmt.Sprintf("All Trades (%d Total)", len(trades)))
	if len(trades) == 0 {
		list.Lines = append(list.Lines, "No trades recorded yet.")
	}
	for _, t := range trades {
		list.Lines = append(list.Lines, tradeLine(t, f)+" | Notes: "+t.Notes)
	}

	return doc
}
