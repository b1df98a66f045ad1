// Package journal implements a personal trading journal: a record store for
// discretionary trades and free-text dream notes, an aggregation engine
// deriving performance statistics from them, a report composer producing
// structured documents for several scopes, and a chart data adapter shaping
// aggregates for an external charting collaborator.
package journal

import (
	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// MaxTradesPerDay is the business rule limiting how many trades may be
// recorded on one calendar date.
const MaxTradesPerDay = 4

// DefaultNotes is stored when a trade is recorded without notes.
const DefaultNotes = "No notes provided"

// TradeRecord is one discrete, closed position with a realized profit/loss.
type TradeRecord struct {
	ID          int64           `json:"id"`
	Date        date.Date       `json:"date"`
	Time        date.Clock      `json:"time"`
	TradeNumber int             `json:"tradeNumber"`
	Pair        string          `json:"pair"`
	Strategy    string          `json:"strategy"`
	PnL         decimal.Decimal `json:"pnl"`
	Notes       string          `json:"notes"`
}

// Outcome classifies the trade by the sign of its P&L.
func (t TradeRecord) Outcome() Outcome {
	switch t.PnL.Sign() {
	case 1:
		return Win
	case -1:
		return Loss
	default:
		return BreakEven
	}
}

// DreamRecord is a free-text goal or motivation note. It has no structural
// relation to trade data.
type DreamRecord struct {
	ID      int64     `json:"id"`
	Date    date.Date `json:"date"`
	Content string    `json:"content"`
}

// Outcome is the win/loss classification of a trade.
type Outcome int

const (
	// Win is a trade with strictly positive P&L.
	Win Outcome = iota
	// Loss is a trade with strictly negative P&L.
	Loss
	// BreakEven is a trade with zero P&L. It is excluded from the win-rate
	// denominator and it terminates streaks.
	BreakEven
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "break-even"
	}
}
