package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BackupReport is a full data export in document form. It carries every
// record verbatim so the journal can be reconstructed by hand if need be.
func BackupReport(trades []TradeRecord, dreams []DreamRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	doc := &Document{
		Title:       "Trading Journal Backup",
		GeneratedAt: now,
	}

	balances := doc.Section("Balances")
	balances.Add("Starting Balance", startingBalance.String())
	balances.Add("Account Balance", startingBalance.Add(NetPnL(trades)).String())

	ts := doc.Section(fmt.Sprintf("Trades (%d)", len(trades)))
	for _, t := range trades {
		ts.Lines = append(ts.Lines, fmt.Sprintf("id=%d | %s %s | Trade %d | %s | %s | %s | %s",
			t.ID, t.Date, t.Time, t.TradeNumber, t.Pair, t.Strategy, t.PnL.String(), t.Notes))
	}
	if len(trades) == 0 {
		ts.Lines = append(ts.Lines, "No trades recorded.")
	}

	ds := doc.Section(fmt.Sprintf("Dreams (%d)", len(dreams)))
	for _, d := range dreams {
		ds.Lines = append(ds.Lines, fmt.Sprintf("id=%d | %s | %s", d.ID, d.Date, d.Content))
	}
	if len(dreams) == 0 {
		ds.Lines = append(ds.Lines, "No dreams recorded.")
	}

	doc.Footer = "Amounts above are raw values, not formatted for display. Current balance formatted: " +
		f.Money(startingBalance.Add(NetPnL(trades)))
	return doc
}
