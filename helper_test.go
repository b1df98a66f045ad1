package journal

import (
	"io"

	"github.com/fxtae/journal/date"
	"github.com/fxtae/journal/kv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// testLogger discards all output.
func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// newTestStore returns a loaded store on an in-memory backend.
func newTestStore() *Store {
	s := NewStore(kv.NewMemory(), testLogger())
	s.Load()
	return s
}

// trade builds a minimal valid trade record for aggregation tests. The id is
// left zero; aggregation never depends on it except as a tie-break.
func trade(day string, clock string, pnl string) TradeRecord {
	return TradeRecord{
		Date:        date.MustParse(day),
		Time:        date.MustParseClock(clock),
		TradeNumber: 1,
		Pair:        "EUR/USD",
		Strategy:    "Breakout",
		PnL:         decimal.RequireFromString(pnl),
		Notes:       DefaultNotes,
	}
}

// candidate builds a valid trade candidate for store tests.
func candidate(day string, n int, pnl string) TradeCandidate {
	return TradeCandidate{
		Date:        date.MustParse(day),
		Time:        date.MustParseClock("10:30"),
		TradeNumber: n,
		Pair:        "GBP/USD",
		Strategy:    "London Open",
		PnL:         decimal.RequireFromString(pnl),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
