package models

import "strconv"

// SentinelNA marks a field that the card advertises but whose value could not
// be located in the card text. Distinct from the empty string, which means
// the positional slot for the field did not exist at all.
const SentinelNA = "NA"

// StyleRecord is the parsed output for one style card, plus the Brand/Model/
// Year tags stamped by the orchestrator after a page yields results.
//
// All specification fields are free-text as rendered on the page ("$25,000",
// "180 lb-ft", "6.5s", ...). No cleansing happens here.
type StyleRecord struct {
	Style       string
	Price       string
	MPG         string
	Horsepower  string
	Engine      string
	CargoRoom   string // line containing "cu ft", or SentinelNA
	Torque      string // line containing "lb-ft", or SentinelNA
	ZeroToSixty string
	TopSpeed    string
	CurbWeight  string

	Brand string
	Model string
	Year  int
}

// ResultTable is the append-only, ordered accumulation of parsed records.
// No deduplication is performed.
type ResultTable []StyleRecord

// Columns is the fixed CSV column order for serialized result tables.
var Columns = []string{
	"Style", "Price", "MPG", "Horsepower", "Engine",
	"CargoRoom_cu_ft", "Torque_lb_ft", "0-60", "Top Speed", "Curb Weight",
	"Brand", "Model", "Year",
}

// Row renders the record in Columns order.
func (r StyleRecord) Row() []string {
	return []string{
		r.Style, r.Price, r.MPG, r.Horsepower, r.Engine,
		r.CargoRoom, r.Torque, r.ZeroToSixty, r.TopSpeed, r.CurbWeight,
		r.Brand, r.Model, strconv.Itoa(r.Year),
	}
}
