package journal

import (
	"fmt"
	"strings"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// Series is the label/values shape handed to the external charting
// collaborator. Values are display floats; computation upstream is decimal.
type Series struct {
	Labels []string
	Values []float64
}

// EquityWindow selects the time span of the equity curve chart.
type EquityWindow int

const (
	// Last7Days is the default equity chart window.
	Last7Days EquityWindow = iota
	Last1Month
	Last12Months
)

func (w EquityWindow) String() string {
	switch w {
	case Last1Month:
		return "1m"
	case Last12Months:
		return "12m"
	default:
		return "7d"
	}
}

// ParseEquityWindow parses "7d", "1m", or "12m".
func ParseEquityWindow(s string) (EquityWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "7d", "":
		return Last7Days, nil
	case "1m":
		return Last1Month, nil
	case "12m":
		return Last12Months, nil
	default:
		return Last7Days, fmt.Errorf("unknown equity window %q (want 7d, 1m, or 12m)", s)
	}
}

// from returns the window's anchor date.
func (w EquityWindow) from(today date.Date) date.Date {
	switch w {
	case Last1Month:
		return today.AddMonths(-1)
	case Last12Months:
		return today.AddMonths(-12)
	default:
		return today.Add(-7)
	}
}

// EquityChart reshapes the equity series of the windowed trade set into a
// labeled point series.
func EquityChart(trades []TradeRecord, startingBalance decimal.Decimal, w EquityWindow, today date.Date) Series {
	filtered := FilterSince(trades, w.from(today))
	series := EquitySeries(filtered, startingBalance)

	chart := Series{
		Labels: make([]string, 0, len(series)),
		Values: make([]float64, 0, len(series)),
	}
	for _, p := range series {
		v, _ := p.Balance.Float64()
		chart.Labels = append(chart.Labels, p.Label)
		chart.Values = append(chart.Values, v)
	}
	return chart
}

// OutcomeChart is the 3-category count distribution of trade outcomes.
func OutcomeChart(trades []TradeRecord) Series {
	wins, losses, breakEven := CountOutcomes(trades)
	return Series{
		Labels: []string{"Winning Trades", "Losing Trades", "Break Even"},
		Values: []float64{float64(wins), float64(losses), float64(breakEven)},
	}
}

// WinLossChart is the 2-category sum distribution of gross profit and gross
// loss magnitude.
func WinLossChart(trades []TradeRecord) Series {
	profit, _ := GrossProfit(trades).Float64()
	loss, _ := GrossLoss(trades).Float64()
	return Series{
		Labels: []string{"Total Profit", "Total Loss"},
		Values: []float64{profit, loss},
	}
}

// ProfitFactorChart buckets trades into the last six calendar months, oldest
// to newest, and applies the profit-factor formula to each bucket.
func ProfitFactorChart(trades []TradeRecord, today date.Date) Series {
	months := date.LastMonths(6, today)
	chart := Series{
		Labels: make([]string, 0, len(months)),
		Values: make([]float64, 0, len(months)),
	}
	for _, m := range months {
		chart.Labels = append(chart.Labels, m.Label())
		chart.Values = append(chart.Values, ProfitFactor(FilterMonth(trades, m)))
	}
	return chart
}
