package journal

import (
	"fmt"
	"slices"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// ProfitFactorCap is the sentinel reported when gross losses are zero but
// gross profit is positive, instead of infinity.
const ProfitFactorCap = 999

// All aggregation functions in this file are pure: they derive metrics from a
// trade list snapshot plus explicit scalars, and recompute from scratch on
// every call.

// FilterOn returns the trades recorded on the given date.
func FilterOn(trades []TradeRecord, on date.Date) []TradeRecord {
	var out []TradeRecord
	for _, t := range trades {
		if t.Date == on {
			out = append(out, t)
		}
	}
	return out
}

// FilterSince returns the trades whose date falls in [from, +inf). Combined
// with "now" anchoring this implements the today / last-7-days / last-30-days
// windows.
func FilterSince(trades []TradeRecord, from date.Date) []TradeRecord {
	var out []TradeRecord
	for _, t := range trades {
		if !t.Date.Before(from) {
			out = append(out, t)
		}
	}
	return out
}

// FilterRange returns the trades whose date falls within r, boundaries
// included.
func FilterRange(trades []TradeRecord, r date.Range) []TradeRecord {
	var out []TradeRecord
	for _, t := range trades {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// FilterMonth returns the trades recorded in the given calendar month.
func FilterMonth(trades []TradeRecord, m date.CalendarMonth) []TradeRecord {
	var out []TradeRecord
	for _, t := range trades {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// Chronological returns a copy of the trades sorted ascending by (date, time),
// with id as a deterministic tie-break for same-minute trades.
func Chronological(trades []TradeRecord) []TradeRecord {
	sorted := slices.Clone(trades)
	slices.SortFunc(sorted, func(a, b TradeRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// NetPnL sums the P&L of all trades.
func NetPnL(trades []TradeRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		sum = sum.Add(t.PnL)
	}
	return sum
}

// CountOutcomes counts winning, losing, and break-even trades.
func CountOutcomes(trades []TradeRecord) (wins, losses, breakEven int) {
	for _, t := range trades {
		switch t.Outcome() {
		case Win:
			wins++
		case Loss:
			losses++
		default:
			breakEven++
		}
	}
	return
}

// GrossProfit sums the P&L of winning trades.
func GrossProfit(trades []TradeRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		if t.Outcome() == Win {
			sum = sum.Add(t.PnL)
		}
	}
	return sum
}

// GrossLoss sums the magnitude of losing trades' P&L. It is never negative.
func GrossLoss(trades []TradeRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		if t.Outcome() == Loss {
			sum = sum.Add(t.PnL)
		}
	}
	return sum.Abs()
}

// WinRate returns 100 × wins/(wins+losses), break-even trades excluded from
// the denominator, and 0 when the denominator is 0.
func WinRate(trades []TradeRecord) float64 {
	wins, losses, _ := CountOutcomes(trades)
	if wins+losses == 0 {
		return 0
	}
	return 100 * float64(wins) / float64(wins+losses)
}

// ProfitFactor returns gross profit over gross loss magnitude. When losses
// are zero it returns ProfitFactorCap for positive profit and 0 otherwise.
func ProfitFactor(trades []TradeRecord) float64 {
	return cappedRatio(GrossProfit(trades), GrossLoss(trades))
}

// cappedRatio implements the shared profit/loss ratio convention.
func cappedRatio(profit, loss decimal.Decimal) float64 {
	if loss.IsZero() {
		if profit.Sign() > 0 {
			return ProfitFactorCap
		}
		return 0
	}
	ratio, _ := profit.Div(loss).Float64()
	return ratio
}

// AverageWin returns the mean P&L of winning trades, zero when there are none.
func AverageWin(trades []TradeRecord) decimal.Decimal {
	wins, _, _ := CountOutcomes(trades)
	if wins == 0 {
		return decimal.Zero
	}
	return GrossProfit(trades).Div(decimal.NewFromInt(int64(wins)))
}

// AverageLoss returns the mean signed P&L of losing trades, zero when there
// are none.
func AverageLoss(trades []TradeRecord) decimal.Decimal {
	_, losses, _ := CountOutcomes(trades)
	if losses == 0 {
		return decimal.Zero
	}
	return GrossLoss(trades).Neg().Div(decimal.NewFromInt(int64(losses)))
}

// RiskReward returns average win over average loss magnitude, with the same
// capping convention as ProfitFactor.
func RiskReward(trades []TradeRecord) float64 {
	return cappedRatio(AverageWin(trades), AverageLoss(trades).Abs())
}

// LargestWin returns the maximum single-trade P&L, zero for an empty list.
func LargestWin(trades []TradeRecord) decimal.Decimal {
	best := decimal.Zero
	for i, t := range trades {
		if i == 0 || t.PnL.GreaterThan(best) {
			best = t.PnL
		}
	}
	return best
}

// LargestLoss returns the minimum single-trade P&L, zero for an empty list.
func LargestLoss(trades []TradeRecord) decimal.Decimal {
	worst := decimal.Zero
	for i, t := range trades {
		if i == 0 || t.PnL.LessThan(worst) {
			worst = t.PnL
		}
	}
	return worst
}

// MaxConsecutiveWins scans the chronologically sorted list and returns the
// longest run of winning trades. Any non-win, break-even included, resets the
// counter.
func MaxConsecutiveWins(trades []TradeRecord) int {
	return maxRun(trades, Win)
}

// MaxConsecutiveLosses is the losing-side counterpart of MaxConsecutiveWins.
func MaxConsecutiveLosses(trades []TradeRecord) int {
	return maxRun(trades, Loss)
}

func maxRun(trades []TradeRecord, outcome Outcome) int {
	var max, run int
	for _, t := range Chronological(trades) {
		if t.Outcome() == outcome {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	return max
}

// Streak is a maximal run of consecutive same-signed outcomes ending at the
// most recent trade.
type Streak struct {
	Length  int
	Outcome Outcome
}

func (s Streak) String() string {
	if s.Length == 0 {
		return "no streak"
	}
	plural := ""
	if s.Length > 1 {
		plural = "es"
		if s.Outcome != Loss {
			plural = "s"
		}
	}
	return fmt.Sprintf("%d %s%s", s.Length, s.Outcome, plural)
}

// CurrentStreak counts backward from the most recent trade while the strict
// outcome sign matches. A break-even trade terminates the streak: when the
// latest trade is break-even the streak has length 0. ok is false for an
// empty list.
func CurrentStreak(trades []TradeRecord) (streak Streak, ok bool) {
	sorted := Chronological(trades)
	if len(sorted) == 0 {
		return Streak{}, false
	}
	latest := sorted[len(sorted)-1]
	if latest.Outcome() == BreakEven {
		return Streak{Length: 0, Outcome: BreakEven}, true
	}
	streak = Streak{Outcome: latest.Outcome()}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Outcome() != latest.Outcome() {
			break
		}
		streak.Length++
	}
	return streak, true
}

// DayPnL is one calendar date with its summed P&L.
type DayPnL struct {
	Date date.Date
	PnL  decimal.Decimal
}

// BestDay groups trades by date and returns the date with the highest summed
// P&L. ok is false when there are no trades.
func BestDay(trades []TradeRecord) (DayPnL, bool) {
	return extremalDay(trades, func(candidate, current decimal.Decimal) bool {
		return candidate.GreaterThan(current)
	})
}

// WorstDay returns the date with the lowest summed P&L.
func WorstDay(trades []TradeRecord) (DayPnL, bool) {
	return extremalDay(trades, func(candidate, current decimal.Decimal) bool {
		return candidate.LessThan(current)
	})
}

func extremalDay(trades []TradeRecord, better func(candidate, current decimal.Decimal) bool) (DayPnL, bool) {
	if len(trades) == 0 {
		return DayPnL{}, false
	}
	byDate := make(map[date.Date]decimal.Decimal)
	for _, t := range trades {
		byDate[t.Date] = byDate[t.Date].Add(t.PnL)
	}
	var result DayPnL
	first := true
	for d, pnl := range byDate {
		if first || better(pnl, result.PnL) || (pnl.Equal(result.PnL) && d.Before(result.Date)) {
			result = DayPnL{Date: d, PnL: pnl}
			first = false
		}
	}
	return result, true
}

// TradingDays counts the distinct dates with at least one trade. It returns 1
// for an empty list so that per-day averages stay defined.
func TradingDays(trades []TradeRecord) int {
	if len(trades) == 0 {
		return 1
	}
	days := make(map[date.Date]struct{})
	for _, t := range trades {
		days[t.Date] = struct{}{}
	}
	return len(days)
}

// AverageTradesPerDay returns trade count over distinct trading days.
func AverageTradesPerDay(trades []TradeRecord) float64 {
	if len(trades) == 0 {
		return 0
	}
	return float64(len(trades)) / float64(TradingDays(trades))
}

// AverageMonthlyGrowth spreads total account growth (accountBalance minus
// startingBalance, which is the net P&L) over the calendar months elapsed
// since the first trade, floored at one month.
func AverageMonthlyGrowth(trades []TradeRecord, today date.Date) decimal.Decimal {
	if len(trades) == 0 {
		return decimal.Zero
	}
	first := trades[0].Date
	for _, t := range trades {
		if t.Date.Before(first) {
			first = t.Date
		}
	}
	months := first.MonthsSince(today)
	return NetPnL(trades).Div(decimal.NewFromInt(int64(months)))
}

// Recommendations applies the fixed advisory rule table to the full trade
// list. The output is canned text, not an adaptive policy.
func Recommendations(trades []TradeRecord) []string {
	var recs []string

	if len(trades) < 10 {
		recs = append(recs, "Need more trades for accurate analysis (minimum 10 trades recommended)")
	}

	winRate := WinRate(trades)
	if winRate < 40 {
		recs = append(recs, "Focus on improving win rate through better trade selection")
	} else if winRate > 60 {
		recs = append(recs, "Excellent win rate! Consider increasing position sizes carefully")
	}

	profitFactor := ProfitFactor(trades)
	if profitFactor < 1.5 {
		recs = append(recs, "Work on improving profit factor through better risk management")
	} else if profitFactor > 3 {
		recs = append(recs, "Outstanding profit factor! Maintain your current strategy")
	}

	if MaxConsecutiveLosses(trades) > 3 {
		recs = append(recs, "Reduce consecutive losses by taking breaks after losing streaks")
	}

	if len(recs) == 0 {
		recs = append(recs, "Continue with current strategy. All metrics are within good ranges")
	}
	return recs
}
