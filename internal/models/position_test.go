package models

import (
	"encoding/json"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestPosition_AvgCost(t *testing.T) {
	p := Position{Symbol: "AVGO", Qty: f(12), Cost: f(3621.02)}

	avg, ok := p.AvgCost()
	if !ok {
		t.Fatal("expected average cost to be computable")
	}
	if avg.StringFixed(2) != "301.75" {
		t.Errorf("expected 301.75, got %s", avg.StringFixed(2))
	}
}

func TestPosition_AvgCost_ZeroQty(t *testing.T) {
	p := Position{Symbol: "SPY", Qty: f(0), Cost: f(100)}

	if _, ok := p.AvgCost(); ok {
		t.Error("expected unknown average cost for zero quantity")
	}
}

func TestPosition_AvgCost_NilFields(t *testing.T) {
	p := Position{Symbol: "NVDA", Cost: f(100)}
	if _, ok := p.AvgCost(); ok {
		t.Error("expected unknown average cost for nil qty")
	}

	p = Position{Symbol: "NVDA", Qty: f(5)}
	if _, ok := p.AvgCost(); ok {
		t.Error("expected unknown average cost for nil cost")
	}
}

func TestPosition_Unmarshal_Numbers(t *testing.T) {
	var p Position
	raw := `{"symbol": "avgo", "qty": 12, "cost": 3621.02, "gain_pct": "+15.91%"}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if p.Symbol != "AVGO" {
		t.Errorf("expected normalized symbol AVGO, got %s", p.Symbol)
	}
	if p.Qty == nil || *p.Qty != 12 {
		t.Errorf("expected qty 12, got %v", p.Qty)
	}
	if p.Cost == nil || *p.Cost != 3621.02 {
		t.Errorf("expected cost 3621.02, got %v", p.Cost)
	}
	if p.GainPct != "+15.91%" {
		t.Errorf("expected gain +15.91%%, got %s", p.GainPct)
	}
}

func TestPosition_Unmarshal_StringNumbers(t *testing.T) {
	var p Position
	raw := `{"symbol": "SPY", "qty": "5", "cost": "$3,065.42", "gain_pct": 6.79}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if p.Qty == nil || *p.Qty != 5 {
		t.Errorf("expected qty 5, got %v", p.Qty)
	}
	if p.Cost == nil || *p.Cost != 3065.42 {
		t.Errorf("expected cost 3065.42, got %v", p.Cost)
	}
	if p.GainPct != "6.79" {
		t.Errorf("expected gain 6.79, got %s", p.GainPct)
	}
}

func TestPosition_Unmarshal_Unreadable(t *testing.T) {
	var p Position
	raw := `{"symbol": "PLTR", "qty": "?", "cost": null}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if p.Qty != nil {
		t.Errorf("expected nil qty for '?', got %v", *p.Qty)
	}
	if p.Cost != nil {
		t.Errorf("expected nil cost for null, got %v", *p.Cost)
	}
	if p.GainPct != "" {
		t.Errorf("expected empty gain, got %s", p.GainPct)
	}
}

func TestNormalizeTicker(t *testing.T) {
	if got := NormalizeTicker("  nvda "); got != "NVDA" {
		t.Errorf("expected NVDA, got %s", got)
	}
}

func TestValidTicker(t *testing.T) {
	for _, ok := range []string{"NVDA", "BRK.B", "RDS-A", "SPY"} {
		if !ValidTicker(ok) {
			t.Errorf("expected %s to be valid", ok)
		}
	}
	for _, bad := range []string{"", "nvda", "TOOLONGSYMBOL", "N V"} {
		if ValidTicker(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
