package journal

import (
	"fmt"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// AnalyticsReport is the deep-dive document: profit analysis, extremes,
// consistency metrics, account growth, and the rule-table recommendations.
func AnalyticsReport(trades []TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	today := date.New(now.Date())
	accountBalance := startingBalance.Add(NetPnL(trades))
	wins, losses, _ := CountOutcomes(trades)

	doc := &Document{
		Title:       "Trading Analytics Report",
		GeneratedAt: now,
	}

	overview := doc.Section("Performance Overview")
	overview.Add("Total Trades", fmt.Sprintf("%d", len(trades)))
	overview.Add("Winning Trades", fmt.Sprintf("%d", wins))
	overview.Add("Losing Trades", fmt.Sprintf("%d", losses))
	overview.Add("Win Rate", percent(WinRate(trades)))
	overview.Add("Profit Factor", ratio(ProfitFactor(trades)))

	profit := doc.Section("Profit Analysis")
	profit.Add("Total Profit", f.Money(GrossProfit(trades)))
	profit.Add("Total Loss", f.Money(GrossLoss(trades)))
	profit.Add("Net Profit", f.Money(NetPnL(trades)))
	profit.Add("Average Win", f.Money(AverageWin(trades)))
	profit.Add("Average Loss", f.Money(AverageLoss(trades)))
	profit.Add("Win/Loss Ratio", ratio(RiskReward(trades)))

	extremes := doc.Section("Extreme Performance")
	extremes.Add("Largest Win", f.Money(LargestWin(trades)))
	extremes.Add("Largest Loss", f.Money(LargestLoss(trades)))
	extremes.Add("Best Day", dayText(BestDay(trades))(f))
	extremes.Add("Worst Day", dayText(WorstDay(trades))(f))

	consistency := doc.Section("Consistency Metrics")
	consistency.Add("Max Consecutive Wins", fmt.Sprintf("%d", MaxConsecutiveWins(trades)))
	consistency.Add("Max Consecutive Losses", fmt.Sprintf("%d", MaxConsecutiveLosses(trades)))
	consistency.Add("Current Streak", streakText(trades))
	consistency.Add("Average Trades Per Day", fmt.Sprintf("%.1f", AverageTradesPerDay(trades)))

	growth := doc.Section("Account Growth")
	growth.Add("Starting Balance", f.Money(startingBalance))
	growth.Add("Current Balance", f.Money(accountBalance))
	growth.Add("Total Growth", f.Money(NetPnL(trades)))
	growth.Add("Growth %", growthPercent(trades, startingBalance))
	growth.Add("Average Monthly Growth", f.Money(AverageMonthlyGrowth(trades, today)))

	recs := doc.Section("Recommendations")
	for i, r := range Recommendations(trades) {
		recs.Lines = append(recs.Lines, fmt.Sprintf("%d. %s", i+1, r))
	}

	return doc
}

// dayText renders a best/worst day result, with the undefined-text fallback
// for an empty journal.
func dayText(day DayPnL, ok bool) func(Formatter) string {
	return func(f Formatter) string {
		if !ok {
			return "No trades"
		}
		return fmt.Sprintf("%s: %s", day.Date, f.SignedMoney(day.PnL))
	}
}

func streakText(trades []TradeRecord) string {
	streak, ok := CurrentStreak(trades)
	if !ok {
		return "No trades"
	}
	return streak.String()
}
