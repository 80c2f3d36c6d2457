package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Position is one holding extracted from a portfolio screenshot.
// Qty and Cost are nil when the OCR could not read them; GainPct keeps
// the sign and percent mark exactly as extracted ("" when unknown).
// Positions are transient, held only in memory during one analysis run.
type Position struct {
	Symbol  string   `json:"symbol"`
	Qty     *float64 `json:"qty"`
	Cost    *float64 `json:"cost"`
	GainPct string   `json:"gain_pct,omitempty"`
}

// UnmarshalJSON tolerates the shapes vision models actually return:
// numbers, numeric strings with thousand separators, "?", or null for
// qty/cost, and numbers for gain_pct.
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw struct {
		Symbol  string          `json:"symbol"`
		Qty     json.RawMessage `json:"qty"`
		Cost    json.RawMessage `json:"cost"`
		GainPct json.RawMessage `json:"gain_pct"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Symbol = NormalizeTicker(raw.Symbol)
	p.Qty = flexNumber(raw.Qty)
	p.Cost = flexNumber(raw.Cost)
	p.GainPct = flexString(raw.GainPct)
	return nil
}

// AvgCost returns cost/qty rounded to two decimals. The second return
// is false when either field is missing or qty is not positive.
func (p *Position) AvgCost() (decimal.Decimal, bool) {
	if p.Qty == nil || p.Cost == nil || *p.Qty <= 0 {
		return decimal.Zero, false
	}
	cost := decimal.NewFromFloat(*p.Cost)
	qty := decimal.NewFromFloat(*p.Qty)
	return cost.Div(qty).Round(2), true
}

// flexNumber parses a JSON value that may be a number, a numeric
// string (possibly with commas or a currency sign), or anything else.
// Unparseable values become nil, mirroring an unreadable OCR cell.
func flexNumber(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// flexString renders a JSON value as a display string, "" for null.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
