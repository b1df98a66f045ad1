package journal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// CSV for trades keeps exports spreadsheet friendly, JSON backup keeps the
// whole journal in a single restorable file.

// csvHeader is the column order of the trade CSV format.
var csvHeader = []string{"Date", "Time", "Trade Number", "Pair", "Strategy", "P&L", "Notes"}

// ExportTradesCSV exports trades to 'w' in the trade CSV format, one row per
// trade plus a header row. Rows keep the journal's newest-first order.
func ExportTradesCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write trade CSV header: %w", err)
	}
	for _, t := range trades {
		row := []string{
			t.Date.String(),
			t.Time.String(),
			strconv.Itoa(t.TradeNumber),
			t.Pair,
			t.Strategy,
			t.PnL.String(),
			t.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write trade CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportTradesCSV imports trades from 'r' in the trade CSV format. A header
// row matching the export format is skipped if present. Imported rows carry
// no ids; callers add them through the store so id assignment and validation
// stay in one place.
func ImportTradesCSV(r io.Reader) ([]TradeCandidate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	var candidates []TradeCandidate
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse trade CSV line %d: %w", line, err)
		}
		if line == 1 && row[0] == csvHeader[0] {
			continue
		}
		c, err := parseTradeRow(row)
		if err != nil {
			return nil, fmt.Errorf("cannot parse trade CSV line %d: %w", line, err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func parseTradeRow(row []string) (TradeCandidate, error) {
	var c TradeCandidate
	d, err := date.Parse(row[0])
	if err != nil {
		return c, fmt.Errorf("invalid date %q: %w", row[0], err)
	}
	clock, err := date.ParseClock(row[1])
	if err != nil {
		return c, fmt.Errorf("invalid time %q: %w", row[1], err)
	}
	n, err := strconv.Atoi(row[2])
	if err != nil {
		return c, fmt.Errorf("invalid trade number %q: %w", row[2], err)
	}
	pnl, err := decimal.NewFromString(row[5])
	if err != nil {
		return c, fmt.Errorf("invalid P&L %q: %w", row[5], err)
	}
	c = TradeCandidate{
		Date:        d,
		Time:        clock,
		TradeNumber: n,
		Pair:        row[3],
		Strategy:    row[4],
		PnL:         pnl,
		Notes:       row[6],
	}
	return c, nil
}

// Backup is the JSON form of the whole journal.
type Backup struct {
	Trades          []TradeRecord   `json:"trades"`
	Dreams          []DreamRecord   `json:"dreams"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	AccountBalance  decimal.Decimal `json:"accountBalance"`
}

// ExportBackup exports the whole journal to 'w' as a single JSON object.
func ExportBackup(w io.Writer, trades []TradeRecord, dreams []DreamRecord, startingBalance decimal.Decimal) error {
	if trades == nil {
		trades = []TradeRecord{}
	}
	if dreams == nil {
		dreams = []DreamRecord{}
	}
	b := Backup{
		Trades:          trades,
		Dreams:          dreams,
		StartingBalance: startingBalance,
		AccountBalance:  startingBalance.Add(NetPnL(trades)),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// ImportBackup imports a journal backup from 'r'. The account balance field
// is ignored on import, it is always rederived from trades.
func ImportBackup(r io.Reader) (Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup: %w", err)
	}
	return b, nil
}
