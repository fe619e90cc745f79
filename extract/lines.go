package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements that start a new rendered line, approximating the
// line structure a browser's innerText would produce for a card.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dl": true, "dd": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// textLines derives the visible text lines of a node subtree. Block-level
// boundaries and <br> flush the current line; runs of whitespace collapse to
// a single space; empty lines are dropped.
func textLines(n *html.Node) []string {
	w := &lineWalker{}
	w.walk(n)
	w.flush()
	return w.lines
}

type lineWalker struct {
	cur   strings.Builder
	lines []string
}

func (w *lineWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.append(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			w.flush()
			return
		}
		if blockTags[n.Data] {
			w.flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c)
		}
		if blockTags[n.Data] {
			w.flush()
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *lineWalker) append(text string) {
	for _, f := range strings.Fields(text) {
		if w.cur.Len() > 0 {
			w.cur.WriteByte(' ')
		}
		w.cur.WriteString(f)
	}
}

func (w *lineWalker) flush() {
	if line := strings.TrimSpace(w.cur.String()); line != "" {
		w.lines = append(w.lines, line)
	}
	w.cur.Reset()
}
