// Package extract turns styles-region HTML snapshots into typed style
// records. It is deliberately browser-free: the crawler hands it serialized
// innerHTML, so every heuristic here is unit-testable against literal
// fixtures without a live page.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// cardSelector matches style-card anchors: a descriptive title attribute and
// a link target. Plain anchors (nav links, badges) carry neither.
var cardSelector = cascadia.MustCompile(`a[title][href]`)

// Card is one style card lifted out of a region snapshot. Lines is the
// card's visible text split on rendered line boundaries, in document order.
type Card struct {
	Title string
	Href  string
	Lines []string
}

// Cards parses a styles-region HTML snapshot and returns its style cards.
// Anchors with an empty title or href are skipped. A snapshot with no cards
// yields an empty slice, not an error — the caller decides whether that is
// worth a diagnostic.
func Cards(regionHTML string) ([]Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(regionHTML))
	if err != nil {
		return nil, err
	}

	var cards []Card
	doc.FindMatcher(cardSelector).Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.AttrOr("title", ""))
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}
		cards = append(cards, Card{
			Title: title,
			Href:  href,
			Lines: textLines(sel.Nodes[0]),
		})
	})
	return cards, nil
}
