package journal

import (
	"fmt"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// monthlyRecentTrades caps the per-trade list of the monthly report.
const monthlyRecentTrades = 10

// MonthlyReport covers the last 30 days, anchored at the current date.
func MonthlyReport(trades []TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	today := date.New(now.Date())
	monthAgo := today.Add(-30)
	monthly := FilterSince(trades, monthAgo)
	monthlyPnL := NetPnL(monthly)
	accountBalance := startingBalance.Add(NetPnL(trades))

	doc := &Document{
		Title:       "Monthly Trading Performance Report",
		GeneratedAt: now,
	}

	period := doc.Section("Monthly Report (Last 30 Days)")
	period.Add("Period", fmt.Sprintf("%s to %s", monthAgo, today))

	perf := doc.Section("Account Performance")
	perf.Add("Current Balance", f.Money(accountBalance))
	perf.Add("Starting Balance", f.Money(startingBalance))
	perf.Add("Monthly P&L", f.SignedMoney(monthlyPnL))
	perf.Add("Total Growth", f.Money(NetPnL(trades)))
	perf.Add("Growth %", growthPercent(trades, startingBalance))
	perf.Add("Total Trades", fmt.Sprintf("%d", len(monthly)))

	wins, losses, _ := CountOutcomes(monthly)
	summary := doc.Section("Trade Summary")
	summary.Add("Winning Trades", fmt.Sprintf("%d", wins))
	summary.Add("Losing Trades", fmt.Sprintf("%d", losses))
	summary.Add("Win Rate", percent(WinRate(monthly)))
	summary.Add("Total Profit", f.Money(GrossProfit(monthly)))
	summary.Add("Total Loss", f.Money(GrossLoss(monthly)))

	recent := doc.Section(fmt.Sprintf("Recent Trades (Last %d)", monthlyRecentTrades))
	for i, t := range monthly {
		if i == monthlyRecentTrades {
			recent.Lines = append(recent.Lines,
				fmt.Sprintf("... and %d more trades", len(monthly)-monthlyRecentTrades))
			break
		}
		recent.Lines = append(recent.Lines, tradeLine(t, f))
	}
	if len(monthly) == 0 {
		recent.Lines = append(recent.Lines, "No trades recorded this month.")
	}

	return doc
}
