package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/fxtae/journal/date"
	"github.com/shopspring/decimal"
)

// Scope selects which report document to compose.
type Scope int

const (
	ScopeToday Scope = iota
	ScopeWeekly
	ScopeMonthly
	ScopeJournal
	ScopeAnalytics
	ScopeDashboard
	ScopeDreams
	ScopeBackup
)

func (s Scope) String() string {
	switch s {
	case ScopeToday:
		return "today"
	case ScopeWeekly:
		return "weekly"
	case ScopeMonthly:
		return "monthly"
	case ScopeJournal:
		return "journal"
	case ScopeAnalytics:
		return "analytics"
	case ScopeDashboard:
		return "dashboard"
	case ScopeDreams:
		return "dreams"
	case ScopeBackup:
		return "backup"
	default:
		return "report"
	}
}

// ParseScope parses a scope name as used on the command line.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today", "daily", "day":
		return ScopeToday, nil
	case "weekly", "week":
		return ScopeWeekly, nil
	case "monthly", "month":
		return ScopeMonthly, nil
	case "journal", "full":
		return ScopeJournal, nil
	case "analytics":
		return ScopeAnalytics, nil
	case "dashboard":
		return ScopeDashboard, nil
	case "dreams":
		return ScopeDreams, nil
	case "backup", "all":
		return ScopeBackup, nil
	default:
		return ScopeToday, fmt.Errorf("unknown report scope %q", s)
	}
}

// Filename returns the export file name for the scope, following the
// <scope>-<YYYY-MM-DD>.<ext> pattern.
func (s Scope) Filename(on date.Date, ext string) string {
	return fmt.Sprintf("%s-%s.%s", s, on, ext)
}

// Item is one labeled value within a report section.
type Item struct {
	Label string
	Value string
}

// Section is a titled part of a report document: a mapping of labels to
// formatted values, an optional list of free lines (per-trade or per-dream
// entries), or both.
type Section struct {
	Title string
	Items []Item
	Lines []string
}

// Add appends a labeled value to the section.
func (s *Section) Add(label, value string) {
	s.Items = append(s.Items, Item{Label: label, Value: value})
}

// Document is a composed report: pure data, independent of any page layout.
// External renderers turn it into markdown, HTML, or PDF pages.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Sections    []*Section
	Footer      string
}

// Section appends a new titled section and returns it for population. The
// returned handle stays valid however many sections are opened afterwards.
func (d *Document) Section(title string) *Section {
	s := &Section{Title: title}
	d.Sections = append(d.Sections, s)
	return s
}

// Compose builds the document for the given scope. It is the single entry
// point used by the CLI and the export commands.
func Compose(scope Scope, trades []TradeRecord, dreams []DreamRecord, startingBalance decimal.Decimal, f Formatter, now time.Time) *Document {
	switch scope {
	case ScopeWeekly:
		return WeeklyReport(trades, startingBalance, f, now)
	case ScopeMonthly:
		return MonthlyReport(trades, startingBalance, f, now)
	case ScopeJournal:
		return JournalReport(trades, startingBalance, f, now)
	case ScopeAnalytics:
		return AnalyticsReport(trades, startingBalance, f, now)
	case ScopeDashboard:
		return DashboardReport(trades, dreams, startingBalance, f, now)
	case ScopeDreams:
		return DreamsReport(dreams, now)
	case ScopeBackup:
		return BackupReport(trades, dreams, startingBalance, f, now)
	default:
		return TodayReport(trades, startingBalance, f, now)
	}
}

// tradeLine renders the one-line form of a trade used in report lists.
func tradeLine(t TradeRecord, f Formatter) string {
	return fmt.Sprintf("%s %s | Trade %d | %s | %s | P&L: %s",
		t.Date, t.Time, t.TradeNumber, t.Pair, t.Strategy, f.SignedMoney(t.PnL))
}

// outcomeTag renders the WIN/LOSS status tag used in report lists. Zero P&L
// tags as WIN here, unlike the three-way Outcome classification.
func outcomeTag(t TradeRecord) string {
	if t.PnL.Sign() >= 0 {
		return "WIN"
	}
	return "LOSS"
}

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func ratio(v float64) string { return fmt.Sprintf("%.2f", v) }

// growthPercent renders account growth relative to the starting balance.
func growthPercent(trades []TradeRecord, startingBalance decimal.Decimal) string {
	if startingBalance.IsZero() {
		return "n/a"
	}
	growth, _ := NetPnL(trades).Div(startingBalance).Float64()
	return percent(growth * 100)
}
