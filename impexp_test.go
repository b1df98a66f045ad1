package journal

import (
	"bytes"
	"strings"
	"testing"
)

func TestTradesCSVRoundTrip(t *testing.T) {
	trades := []TradeRecord{
		trade("2026-08-11", "14:05", "-12.50"),
		trade("2026-08-10", "09:30", "120"),
	}
	trades[0].Notes = "notes, with a comma"

	var buf bytes.Buffer
	if err := ExportTradesCSV(&buf, trades); err != nil {
		t.Fatalf("ExportTradesCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Date,Time,Trade Number,Pair,Strategy,P&L,Notes\n") {
		t.Errorf("missing header: %q", out)
	}

	got, err := ImportTradesCSV(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ImportTradesCSV: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("imported %d candidates, want 2", len(got))
	}
	if got[0].Date != trades[0].Date || got[0].Time != trades[0].Time {
		t.Errorf("candidate[0] = %+v", got[0])
	}
	if !got[0].PnL.Equal(dec("-12.50")) || got[0].Notes != "notes, with a comma" {
		t.Errorf("candidate[0] = %+v", got[0])
	}
	if got[1].Pair != "EUR/USD" || got[1].Strategy != "Breakout" {
		t.Errorf("candidate[1] = %+v", got[1])
	}
}

func TestImportTradesCSVWithoutHeader(t *testing.T) {
	in := "2026-08-10,09:30,1,EUR/USD,Breakout,50,\n"
	got, err := ImportTradesCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTradesCSV: %v", err)
	}
	if len(got) != 1 || !got[0].PnL.Equal(dec("50")) {
		t.Fatalf("got = %+v", got)
	}
}

func TestImportTradesCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad date", "not-a-date,09:30,1,EUR/USD,Breakout,50,\n"},
		{"bad time", "2026-08-10,25:00,1,EUR/USD,Breakout,50,\n"},
		{"bad pnl", "2026-08-10,09:30,1,EUR/USD,Breakout,fifty,\n"},
		{"short row", "2026-08-10,09:30,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportTradesCSV(strings.NewReader(tt.in)); err == nil {
				t.Errorf("expected an error for %q", tt.in)
			}
		})
	}
}

func TestBackupRoundTrip(t *testing.T) {
	trades := []TradeRecord{trade("2026-08-10", "09:30", "100")}
	trades[0].ID = 42
	dreams := []DreamRecord{{ID: 7, Date: trades[0].Date, Content: "retire early"}}

	var buf bytes.Buffer
	if err := ExportBackup(&buf, trades, dreams, dec("1000")); err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}

	b, err := ImportBackup(&buf)
	if err != nil {
		t.Fatalf("ImportBackup: %v", err)
	}
	if len(b.Trades) != 1 || b.Trades[0].ID != 42 || !b.Trades[0].PnL.Equal(dec("100")) {
		t.Errorf("Trades = %+v", b.Trades)
	}
	if len(b.Dreams) != 1 || b.Dreams[0].Content != "retire early" {
		t.Errorf("Dreams = %+v", b.Dreams)
	}
	if !b.StartingBalance.Equal(dec("1000")) || !b.AccountBalance.Equal(dec("1100")) {
		t.Errorf("balances = %s / %s", b.StartingBalance, b.AccountBalance)
	}
}

func TestExportBackupEmptyJournal(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportBackup(&buf, nil, nil, dec("500")); err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}
	// empty lists export as [], not null
	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("backup should not contain nulls: %s", out)
	}
}
