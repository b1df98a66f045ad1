package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fxtae/journal"
)

func testDocument() *journal.Document {
	doc := &journal.Document{
		Title:       "Weekly Trading Performance Report",
		GeneratedAt: time.Date(2026, 8, 29, 16, 45, 0, 0, time.UTC),
		Footer:      "Review your trades regularly.",
	}
	s := doc.Section("Account Performance")
	s.Add("Current Balance", "$10,500.00")
	s.Add("Weekly P&L", "+$100.00")
	list := doc.Section("Weekly Trades")
	list.Lines = append(list.Lines, "2026-08-29 09:15 | Trade 1 | EUR/USD | Breakout | P&L: +$150.00")
	return doc
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testDocument())

	for _, want := range []string{
		"# Weekly Trading Performance Report",
		"Generated on August 29, 2026 at 16:45",
		"## Account Performance",
		"Current Balance",
		"$10,500.00",
		"## Weekly Trades",
		"1. 2026-08-29 09:15",
		"Review your trades regularly.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	// label/value pairs render as a table
	if !strings.Contains(md, "|") {
		t.Errorf("items should render as a markdown table:\n%s", md)
	}
}

func TestMarkdownEmptySectionBody(t *testing.T) {
	doc := &journal.Document{Title: "T", GeneratedAt: time.Now()}
	doc.Section("Empty")
	md := Markdown(doc)
	if !strings.Contains(md, "## Empty") {
		t.Errorf("empty sections should still render their heading:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML(testDocument())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Weekly Trading Performance Report</title>",
		"<h1",
		"<table>",
		"<td>$10,500.00</td>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
