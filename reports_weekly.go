package journal

import (
	"fmt"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// WeeklyReport covers the last 7 days, anchored at the current date.
func WeeklyReport(trades []TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	today := date.New(now.Date())
	weekAgo := today.Add(-7)
	weekly := FilterSince(trades, weekAgo)
	weeklyPnL := NetPnL(weekly)
	accountBalance := startingBalance.Add(NetPnL(trades))

	doc := &Document{
		Title:       "Weekly Trading Performance Report",
		GeneratedAt: now,
	}

	period := doc.Section("Weekly Report (Last 7 Days)")
	period.Add("Period", fmt.Sprintf("%s to %s", weekAgo, today))

	perf := doc.Section("Account Performance")
	perf.Add("Current Balance", f.Money(accountBalance))
	perf.Add("Starting Balance", f.Money(startingBalance))
	perf.Add("Weekly P&L", f.SignedMoney(weeklyPnL))
	perf.Add("Total Trades", fmt.Sprintf("%d", len(weekly)))

	list := doc.Section("Weekly Trades")
	if len(weekly) == 0 {
		list.Lines = append(list.Lines, "No trades recorded this week.")
	}
	for _, t := range weekly {
		list.Lines = append(list.Lines, tradeLine(t, f)+" | Status: "+outcomeTag(t))
	}

	wins, losses, _ := CountOutcomes(weekly)
	metrics := doc.Section("Weekly Metrics")
	metrics.Add("Winning Trades", fmt.Sprintf("%d", wins))
	metrics.Add("Losing Trades", fmt.Sprintf("%d", losses))
	metrics.Add("Win Rate", percent(WinRate(weekly)))
	metrics.Add("Average Daily P&L", f.Money(weeklyPnL.Div(decimal.NewFromInt(7))))

	return doc
}
