package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/fxtae/journal/date"
)

// fixed reference instant for report composition tests
var testNow = time.Date(2026, 8, 29, 16, 45, 0, 0, time.UTC)

func testFormatter() Formatter { return NewFormatter("USD") }

func sectionTitles(doc *Document) []string {
	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func findItem(t *testing.T, doc *Document, section, label string) string {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Title != section {
			continue
		}
		for _, it := range s.Items {
			if it.Label == label {
				return it.Value
			}
		}
	}
	t.Fatalf("item %q/%q not found in %v", section, label, sectionTitles(doc))
	return ""
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		input    string
		expected Scope
		err      bool
	}{
		{"today", ScopeToday, false},
		{"WEEKLY", ScopeWeekly, false},
		{"month", ScopeMonthly, false},
		{"journal", ScopeJournal, false},
		{"analytics", ScopeAnalytics, false},
		{"dashboard", ScopeDashboard, false},
		{"dreams", ScopeDreams, false},
		{"backup", ScopeBackup, false},
		{"quarterly", ScopeToday, true},
	}
	for _, tt := range tests {
		got, err := ParseScope(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseScope(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.expected {
			t.Errorf("ParseScope(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestScopeFilename(t *testing.T) {
	on := date.MustParse("2026-08-29")
	if got := ScopeWeekly.Filename(on, "md"); got != "weekly-2026-08-29.md" {
		t.Errorf("Filename = %q", got)
	}
	if got := ScopeBackup.Filename(on, "json"); got != "backup-2026-08-29.json" {
		t.Errorf("Filename = %q", got)
	}
}

func TestTodayReport(t *testing.T) {
	trades := []TradeRecord{
		trade("2026-08-29", "09:15", "150"),
		trade("2026-08-29", "11:40", "-50"),
		trade("2026-08-01", "09:00", "400"), // older, counts toward balance only
	}
	doc := TodayReport(trades, dec("10000"), testFormatter(), testNow)

	if !strings.Contains(doc.Title, "2026-08-29") {
		t.Errorf("title should carry the date: %q", doc.Title)
	}
	if got := findItem(t, doc, "Account Summary", "Current Balance"); got != "$10,500.00" {
		t.Errorf("Current Balance = %q", got)
	}
	if got := findItem(t, doc, "Account Summary", "Today's P&L"); got != "+$100.00" {
		t.Errorf("Today's P&L = %q", got)
	}
	if got := findItem(t, doc, "Account Summary", "Today's Trades"); got != "2/4" {
		t.Errorf("Today's Trades = %q", got)
	}
	if got := findItem(t, doc, "Performance Metrics", "Win Rate"); got != "50.0%" {
		t.Errorf("Win Rate = %q", got)
	}
}

func TestComposeDispatch(t *testing.T) {
	trades := []TradeRecord{trade("2026-08-29", "09:15", "10")}
	dreams := []DreamRecord{{ID: 1, Date: date.MustParse("2026-08-20"), Content: "own my time"}}

	tests := []struct {
		scope   Scope
		inTitle string
	}{
		{ScopeToday, "Today's Trading Stats"},
		{ScopeWeekly, "Weekly"},
		{ScopeMonthly, "Monthly"},
		{ScopeJournal, "Journal"},
		{ScopeAnalytics, "Analytics"},
		{ScopeDashboard, "Dashboard"},
		{ScopeDreams, "Dreams"},
		{ScopeBackup, "Backup"},
	}
	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			doc := Compose(tt.scope, trades, dreams, dec("1000"), testFormatter(), testNow)
			if doc == nil || len(doc.Sections) == 0 {
				t.Fatalf("Compose(%v) returned an empty document", tt.scope)
			}
			if !strings.Contains(doc.Title, tt.inTitle) {
				t.Errorf("title = %q, want it to contain %q", doc.Title, tt.inTitle)
			}
			if !doc.GeneratedAt.Equal(testNow) {
				t.Errorf("GeneratedAt = %v", doc.GeneratedAt)
			}
		})
	}
}

func TestAnalyticsReportRecommendations(t *testing.T) {
	doc := AnalyticsReport([]TradeRecord{trade("2026-08-29", "09:15", "10")}, dec("1000"), testFormatter(), testNow)

	var recs *Section
	for _, s := range doc.Sections {
		if s.Title == "Recommendations" {
			recs = s
		}
	}
	if recs == nil {
		t.Fatalf("analytics report has no Recommendations section: %v", sectionTitles(doc))
	}
	if len(recs.Lines) == 0 || !strings.HasPrefix(recs.Lines[0], "1. ") {
		t.Errorf("recommendations should be numbered lines: %v", recs.Lines)
	}
}

func TestDashboardReport(t *testing.T) {
	var trades []TradeRecord
	for i, p := range []string{"10", "20", "-5", "30", "40", "50", "60"} {
		tr := trade("2026-08-29", "09:00", p)
		tr.Date = tr.Date.Add(-i)
		tr.ID = int64(i + 1)
		trades = append(trades, tr)
	}
	dreams := []DreamRecord{
		{ID: 1, Date: date.MustParse("2026-08-25"), Content: strings.Repeat("é", 150)},
	}
	doc := DashboardReport(trades, dreams, dec("1000"), testFormatter(), testNow)

	if got := findItem(t, doc, "Daily Performance", "Today's Trades"); got != "1/4" {
		t.Errorf("Today's Trades = %q", got)
	}
	// excerpting counts runes, so multi-byte text keeps whole characters
	if got := findItem(t, doc, "Dreams & Goals", "Latest Dream"); got != strings.Repeat("é", 100)+"..." {
		t.Errorf("Latest Dream should be excerpted to 100 runes, got %q", got)
	}

	var recent *Section
	for _, s := range doc.Sections {
		if strings.HasPrefix(s.Title, "Recent Activity") {
			recent = s
		}
	}
	if recent == nil {
		t.Fatalf("no recent activity section: %v", sectionTitles(doc))
	}
	if len(recent.Lines) != dashboardRecentTrades {
		t.Errorf("recent activity has %d lines, want %d", len(recent.Lines), dashboardRecentTrades)
	}
}

func TestDocumentSectionHandles(t *testing.T) {
	doc := &Document{Title: "T", GeneratedAt: testNow}
	first := doc.Section("First")
	// opening more sections must not invalidate earlier handles, even when
	// the slice grows past its initial capacity
	for i := 0; i < 16; i++ {
		doc.Section("Later")
	}
	first.Add("Key", "Value")

	if got := findItem(t, doc, "First", "Key"); got != "Value" {
		t.Errorf("item written through an early handle = %q, want %q", got, "Value")
	}
}

func TestTradeReport(t *testing.T) {
	tr := trade("2026-08-29", "09:15", "25")
	tr.Notes = "clean breakout"
	doc := TradeReport(tr, dec("1000"), testFormatter(), testNow)

	if got := findItem(t, doc, "Trade Details", "Outcome"); got != "win" {
		t.Errorf("Outcome = %q", got)
	}
	if got := findItem(t, doc, "Account Impact", "Share of Starting Balance"); got != "2.50%" {
		t.Errorf("Share of Starting Balance = %q", got)
	}

	zero := TradeReport(tr, dec("0"), testFormatter(), testNow)
	if got := findItem(t, zero, "Account Impact", "Share of Starting Balance"); got != "n/a" {
		t.Errorf("zero baseline share = %q", got)
	}
}
