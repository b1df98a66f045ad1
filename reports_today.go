package journal

import (
	"fmt"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// TodayReport summarizes the current date: account state, the day's trades,
// and the day's performance metrics.
func TodayReport(trades []TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	today := date.New(now.Date())
	todayTrades := FilterOn(trades, today)
	todayPnL := NetPnL(todayTrades)
	accountBalance := startingBalance.Add(NetPnL(trades))

	doc := &Document{
		Title:       fmt.Sprintf("Today's Trading Stats - %s", today),
		GeneratedAt: now,
	}

	summary := doc.Section("Account Summary")
	summary.Add("Current Balance", f.Money(accountBalance))
	summary.Add("Starting Balance", f.Money(startingBalance))
	summary.Add("Today's P&L", f.SignedMoney(todayPnL))
	summary.Add("Today's Trades", fmt.Sprintf("%d/%d", len(todayTrades), MaxTradesPerDay))

	list := doc.Section("Trades Today")
	if len(todayTrades) == 0 {
		list.Lines = append(list.Lines, "No trades recorded today.")
	}
	for _, t := range todayTrades {
		list.Lines = append(list.Lines, fmt.Sprintf(
			"Trade %d (%s): %s | %s | P&L: %s | Notes: %s",
			t.TradeNumber, t.Time, t.Pair, t.Strategy, f.SignedMoney(t.PnL), t.Notes))
	}

	wins, losses, breakEven := CountOutcomes(todayTrades)
	metrics := doc.Section("Performance Metrics")
	metrics.Add("Winning Trades", fmt.Sprintf("%d", wins))
	metrics.Add("Losing Trades", fmt.Sprintf("%d", losses))
	metrics.Add("Break Even", fmt.Sprintf("%d", breakEven))
	metrics.Add("Win Rate", percent(WinRate(todayTrades)))

	return doc
}
