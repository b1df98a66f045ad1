package journal

import "github.com/shopspring/decimal"

// OpeningLabel marks the first equity point, which is the starting balance
// rather than a trade event.
const OpeningLabel = "Starting Balance"

// EquityPoint is one step of the running account-balance trajectory.
type EquityPoint struct {
	Label   string
	Balance decimal.Decimal
}

// EquitySeries applies each trade's P&L to the starting balance in
// chronological order. The first element is always the starting balance; for
// an empty trade set the series is that single point. The series length is
// therefore len(trades)+1.
func EquitySeries(trades []TradeRecord, startingBalance decimal.Decimal) []EquityPoint {
	series := make([]EquityPoint, 0, len(trades)+1)
	series = append(series, EquityPoint{Label: OpeningLabel, Balance: startingBalance})

	balance := startingBalance
	for _, t := range Chronological(trades) {
		balance = balance.Add(t.PnL)
		series = append(series, EquityPoint{
			Label:   t.Date.Layout("Jan 2") + " " + t.Time.String(),
			Balance: balance,
		})
	}
	return series
}
