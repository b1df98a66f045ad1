package journal

import (
	"fmt"
	"time"
)

// DreamsReport lists every recorded dream, newest first.
func DreamsReport(dreams []DreamRecord, now time.Time) *Document {
	doc := &Document{
		Title:       "Dreams & Goals Report",
		GeneratedAt: now,
	}

	overview := doc.Section("Overview")
	overview.Add("Total Dreams Recorded", fmt.Sprintf("%d", len(dreams)))
	if len(dreams) > 0 {
		overview.Add("Most Recent Entry", dreams[0].Date.String())
		overview.Add("First Entry", dreams[len(dreams)-1].Date.String())
	}

	entries := doc.Section("Dreams")
	if len(dreams) == 0 {
		entries.Lines = append(entries.Lines, "No dreams recorded yet. Write down what you are trading for.")
	}
	for _, d := range dreams {
		entries.Lines = append(entries.Lines, fmt.Sprintf("%s | %s", d.Date.Layout("Jan 2, 2006"), d.Content))
	}

	doc.Footer = "Revisit your goals regularly. They are the reason behind every trade."
	return doc
}
