package renderer

import (
	"fmt"
	"strings"

	"github.com/fxtae/journal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlPage wraps rendered report content in a minimal standalone page.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, Helvetica, Arial, sans-serif; max-width: 50em; margin: 2em auto; padding: 0 1em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
th { background: #f4f4f4; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.2em; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders a report document as a standalone HTML page by converting its
// markdown form.
func HTML(d *journal.Document) (string, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body strings.Builder
	if err := gm.Convert([]byte(Markdown(d)), &body); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return fmt.Sprintf(htmlPage, d.Title, body.String()), nil
}
