package extract

import (
	"reflect"
	"testing"

	"github.com/openroad-data/stylecrawl/models"
)

func TestParseCard_FullCard(t *testing.T) {
	lines := []string{
		"LX", "$25,000", "30 mpg", "180 hp", "2.0L Turbo",
		"14.5 cu ft", "...", "180 lb-ft", "6.5s", "130 mph", "3400 lbs",
	}

	rec, ok := ParseCard(lines)
	if !ok {
		t.Fatal("expected card to parse")
	}

	if rec.Style != "LX" || rec.Price != "$25,000" || rec.MPG != "30 mpg" ||
		rec.Horsepower != "180 hp" || rec.Engine != "2.0L Turbo" {
		t.Errorf("head fields wrong: %+v", rec)
	}
	if rec.CargoRoom != "14.5 cu ft" {
		t.Errorf("CargoRoom = %q, want %q", rec.CargoRoom, "14.5 cu ft")
	}
	if rec.Torque != "180 lb-ft" {
		t.Errorf("Torque = %q, want %q", rec.Torque, "180 lb-ft")
	}
	if rec.ZeroToSixty != "6.5s" {
		t.Errorf("ZeroToSixty = %q, want %q", rec.ZeroToSixty, "6.5s")
	}
	if rec.TopSpeed != "130 mph" {
		t.Errorf("TopSpeed = %q, want %q", rec.TopSpeed, "130 mph")
	}
	if rec.CurbWeight != "3400 lbs" {
		t.Errorf("CurbWeight = %q, want %q", rec.CurbWeight, "3400 lbs")
	}
}

func TestParseCard_TooFewLines(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{},
		{"LX"},
		{"LX", "$25,000", "30 mpg", "180 hp"},
		{"LX", "$25,000", "30 mpg", "180 hp", "2.0L Turbo"},
	} {
		if _, ok := ParseCard(lines); ok {
			t.Errorf("card with %d lines should be dropped", len(lines))
		}
	}
}

func TestParseCard_SixLinesIsEnough(t *testing.T) {
	lines := []string{"LX", "$25,000", "30 mpg", "180 hp", "2.0L Turbo", "3400 lbs"}
	rec, ok := ParseCard(lines)
	if !ok {
		t.Fatal("a six-line card must parse")
	}
	// Head and tail overlap on six lines: the last three lines are also
	// head positions 3-5.
	if rec.ZeroToSixty != "180 hp" || rec.TopSpeed != "2.0L Turbo" || rec.CurbWeight != "3400 lbs" {
		t.Errorf("tail fields wrong on overlap: %+v", rec)
	}
}

func TestParseCard_TailIsLastThreeLines(t *testing.T) {
	// The tail anchors on the end regardless of how long the variable
	// middle is; the line before the tail (torque here) must never bleed
	// into 0-60.
	lines := []string{
		"330i", "$38,750", "26 mpg", "248 hp", "2.0L Turbo I4",
		"Best Seller", "Great Value", "13.0 cu ft", "258 lb-ft",
		"5.4s", "130 mph", "3560 lbs",
	}
	rec, ok := ParseCard(lines)
	if !ok {
		t.Fatal("expected card to parse")
	}
	if rec.ZeroToSixty != "5.4s" {
		t.Errorf("ZeroToSixty = %q, want %q", rec.ZeroToSixty, "5.4s")
	}
	if rec.TopSpeed != "130 mph" {
		t.Errorf("TopSpeed = %q, want %q", rec.TopSpeed, "130 mph")
	}
	if rec.CurbWeight != "3560 lbs" {
		t.Errorf("CurbWeight = %q, want %q", rec.CurbWeight, "3560 lbs")
	}
}

func TestParseCard_KeywordDefaultsToNA(t *testing.T) {
	lines := []string{"LX", "$25,000", "30 mpg", "180 hp", "2.0L Turbo", "6.5s", "130 mph", "3400 lbs"}
	rec, ok := ParseCard(lines)
	if !ok {
		t.Fatal("expected card to parse")
	}
	if rec.CargoRoom != models.SentinelNA {
		t.Errorf("CargoRoom = %q, want NA sentinel", rec.CargoRoom)
	}
	if rec.Torque != models.SentinelNA {
		t.Errorf("Torque = %q, want NA sentinel", rec.Torque)
	}
}

func TestParseCard_KeywordsCaseInsensitive(t *testing.T) {
	lines := []string{"LX", "$25,000", "30 mpg", "180 hp", "2.0L Turbo",
		"14.5 CU FT", "180 LB-FT", "6.5s", "130 mph", "3400 lbs"}
	rec, ok := ParseCard(lines)
	if !ok {
		t.Fatal("expected card to parse")
	}
	if rec.CargoRoom != "14.5 CU FT" {
		t.Errorf("CargoRoom = %q, case-insensitive match failed", rec.CargoRoom)
	}
	if rec.Torque != "180 LB-FT" {
		t.Errorf("Torque = %q, case-insensitive match failed", rec.Torque)
	}
}

func TestParseCard_Idempotent(t *testing.T) {
	lines := []string{"Sport", "$31,500", "27 mpg", "240 hp", "2.0L I4",
		"12.0 cu ft", "258 lb-ft", "5.9s", "155 mph", "3500 lbs"}
	first, ok1 := ParseCard(lines)
	second, ok2 := ParseCard(lines)
	if !ok1 || !ok2 {
		t.Fatal("expected card to parse both times")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing the same lines produced different records:\n%+v\n%+v", first, second)
	}
}

func TestAt_OutOfRange(t *testing.T) {
	lines := []string{"a", "b"}
	if got := at(lines, 5); got != "" {
		t.Errorf("at out of range = %q, want empty", got)
	}
	if got := at(lines, -1); got != "" {
		t.Errorf("at negative index = %q, want empty", got)
	}
	if got := fromEnd(lines, 3); got != "" {
		t.Errorf("fromEnd past start = %q, want empty", got)
	}
}
