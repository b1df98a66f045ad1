// Package renderer turns composed report documents into markdown and HTML.
// It holds no journal logic, it only lays out what the composers produced.
package renderer

import (
	"bytes"

	"github.com/fxtae/journal"
	md "github.com/nao1215/markdown"
)

// Markdown renders a report document as a markdown page. Labeled items become
// two-column tables, free lines become ordered lists.
func Markdown(d *journal.Document) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(d.Title)
	doc.PlainTextf("Generated on %s", d.GeneratedAt.Format("January 2, 2006 at 15:04"))

	for _, s := range d.Sections {
		doc.H2(s.Title)

		if len(s.Items) > 0 {
			table := md.TableSet{
				Header: []string{"Metric", "Value"},
			}
			for _, it := range s.Items {
				table.Rows = append(table.Rows, []string{it.Label, it.Value})
			}
			doc.Table(table)
		}

		if len(s.Lines) > 0 {
			doc.OrderedList(s.Lines...)
		}
	}

	if d.Footer != "" {
		doc.HorizontalRule()
		doc.PlainText(md.Italic(d.Footer))
	}

	return doc.String()
}
