package journal

import (
	"fmt"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// dashboardRecentTrades caps the recent-activity list of the dashboard
// snapshot.
const dashboardRecentTrades = 5

// DashboardReport is the dashboard snapshot: every headline number of the
// dashboard view in one document, plus situational recommendations.
func DashboardReport(trades []TradeRecord, dreams []DreamRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	today := date.New(now.Date())
	todayTrades := FilterOn(trades, today)
	todayPnL := NetPnL(todayTrades)
	weekly := FilterSince(trades, today.Add(-7))
	weeklyPnL := NetPnL(weekly)
	monthly := FilterSince(trades, today.Add(-30))
	monthlyPnL := NetPnL(monthly)
	accountBalance := startingBalance.Add(NetPnL(trades))

	doc := &Document{
		Title:       "Professional Trading Dashboard Report",
		GeneratedAt: now,
	}

	overview := doc.Section("Account Overview")
	overview.Add("Current Balance", f.Money(accountBalance))
	overview.Add("Starting Balance", f.Money(startingBalance))
	overview.Add("Total Growth", f.Money(NetPnL(trades)))
	overview.Add("Growth %", growthPercent(trades, startingBalance))

	daily := doc.Section("Daily Performance")
	daily.Add("Today's P&L", f.SignedMoney(todayPnL))
	daily.Add("Today's Trades", fmt.Sprintf("%d/%d", len(todayTrades), MaxTradesPerDay))
	daily.Add("Daily Target Progress", fmt.Sprintf("%.0f%%", float64(len(todayTrades))/MaxTradesPerDay*100))

	week := doc.Section("Weekly Performance")
	week.Add("Weekly P&L", f.SignedMoney(weeklyPnL))
	week.Add("Weekly Trades", fmt.Sprintf("%d", len(weekly)))
	week.Add("Average Daily P&L", f.Money(weeklyPnL.Div(decimal.NewFromInt(7))))

	month := doc.Section("Monthly Performance")
	month.Add("Monthly P&L", f.SignedMoney(monthlyPnL))
	month.Add("Monthly Trades", fmt.Sprintf("%d", len(monthly)))
	month.Add("Average Daily P&L", f.Money(monthlyPnL.Div(decimal.NewFromInt(30))))

	metrics := doc.Section("Performance Metrics")
	metrics.Add("Total Trades", fmt.Sprintf("%d", len(trades)))
	metrics.Add("Win Rate", percent(WinRate(trades)))
	metrics.Add("Profit Factor", ratio(ProfitFactor(trades)))
	metrics.Add("Risk/Reward Ratio", ratio(RiskReward(trades)))

	recent := doc.Section(fmt.Sprintf("Recent Activity (Last %d Trades)", dashboardRecentTrades))
	if len(trades) == 0 {
		recent.Lines = append(recent.Lines, "No trades recorded yet.")
	}
	for i, t := range trades {
		if i == dashboardRecentTrades {
			break
		}
		recent.Lines = append(recent.Lines, tradeLine(t, f)+" | Status: "+outcomeTag(t))
	}

	goals := doc.Section("Dreams & Goals")
	goals.Add("Total Dreams Recorded", fmt.Sprintf("%d", len(dreams)))
	goals.Add("Latest Dream", latestDreamExcerpt(dreams))

	recs := doc.Section("Recommendations")
	for i, r := range dashboardRecommendations(trades, todayTrades, startingBalance) {
		recs.Lines = append(recs.Lines, fmt.Sprintf("%d. %s", i+1, r))
	}

	return doc
}

// latestDreamExcerpt returns the first 100 characters of the most recent
// dream. Truncation counts runes so multi-byte text is never split.
func latestDreamExcerpt(dreams []DreamRecord) string {
	if len(dreams) == 0 {
		return "No dreams yet"
	}
	content := []rune(dreams[0].Content)
	if len(content) > 100 {
		return string(content[:100]) + "..."
	}
	return dreams[0].Content
}

// dashboardRecommendations is the 3-point situational rule table of the
// dashboard snapshot, distinct from the analytics rule table.
func dashboardRecommendations(trades, todayTrades []TradeRecord, startingBalance decimal.Decimal) []string {
	recs := make([]string, 0, 3)

	if len(todayTrades) < MaxTradesPerDay {
		recs = append(recs, "Consider taking more trades today to reach your daily limit.")
	} else {
		recs = append(recs, "Daily trade limit reached. Good discipline!")
	}

	if WinRate(trades) < 50 {
		recs = append(recs, "Focus on improving win rate through better trade selection.")
	} else {
		recs = append(recs, "Excellent win rate! Maintain consistency.")
	}

	if NetPnL(trades).Sign() > 0 {
		recs = append(recs, "Account is growing. Continue with current strategy.")
	} else {
		recs = append(recs, "Review trading strategy for improvement.")
	}
	return recs
}
