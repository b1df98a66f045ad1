package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeReport is the detail view for a single trade.
func TradeReport(t TradeRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	doc := &Document{
		Title:       fmt.Sprintf("Trade Detail: %s on %s", t.Pair, t.Date),
		GeneratedAt: now,
	}

	details := doc.Section("Trade Details")
	details.Add("Date", t.Date.Layout("January 2, 2006"))
	details.Add("Time", t.Time.String())
	details.Add("Trade Number", fmt.Sprintf("%d of %d", t.TradeNumber, MaxTradesPerDay))
	details.Add("Pair", t.Pair)
	details.Add("Strategy", t.Strategy)
	details.Add("P&L", f.SignedMoney(t.PnL))
	details.Add("Outcome", t.Outcome().String())

	impact := doc.Section("Account Impact")
	if startingBalance.Sign() > 0 {
		share := t.PnL.Div(startingBalance).Mul(decimal.NewFromInt(100))
		impact.Add("Share of Starting Balance", fmt.Sprintf("%s%%", share.StringFixed(2)))
	} else {
		impact.Add("Share of Starting Balance", "n/a")
	}

	notes := doc.Section("Notes")
	notes.Lines = append(notes.Lines, t.Notes)

	return doc
}
