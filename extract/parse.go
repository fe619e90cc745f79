package extract

import (
	"strings"

	"github.com/openroad-data/stylecrawl/models"
)

// minCardLines is the minimum number of text lines a card needs to be
// parseable: five fixed head fields plus at least part of the fixed tail.
// Cards below this are dropped, not recorded with blanks.
const minCardLines = 6

// ParseCard maps a card's ordered text lines to a StyleRecord.
//
// The rendered card text is irregular in the middle (extra badges and
// labels) but stable at the head and tail, so parsing anchors on the first
// five lines and the last three, and keyword-sniffs the variable middle for
// the two known-format fields (cargo room, torque). The second return is
// false when the card has too few lines to parse at all.
func ParseCard(lines []string) (models.StyleRecord, bool) {
	if len(lines) < minCardLines {
		return models.StyleRecord{}, false
	}

	rec := models.StyleRecord{
		Style:       at(lines, 0),
		Price:       at(lines, 1),
		MPG:         at(lines, 2),
		Horsepower:  at(lines, 3),
		Engine:      at(lines, 4),
		CargoRoom:   models.SentinelNA,
		Torque:      models.SentinelNA,
		ZeroToSixty: fromEnd(lines, 3),
		TopSpeed:    fromEnd(lines, 2),
		CurbWeight:  fromEnd(lines, 1),
	}

	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.Contains(lower, "cu ft"):
			rec.CargoRoom = trimmed
		case strings.Contains(lower, "lb-ft"):
			rec.Torque = trimmed
		}
	}

	return rec, true
}

// at returns lines[idx], or "" when idx is out of range. A missing
// positional field degrades to an absent value rather than failing the card.
func at(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

// fromEnd returns the line offset positions from the end (fromEnd(lines, 1)
// is the last line), or "" when out of range.
func fromEnd(lines []string, offset int) string {
	return at(lines, len(lines)-offset)
}
