package pdf

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestResolveTotalsComputed(t *testing.T) {
	items := []QuoteItemData{
		{Quantity: "10", UnitPrice: "100.00"},
		{Quantity: "2", UnitPrice: "49.99"},
	}
	tot, rate := ResolveTotals(items, "20", "", "", "")
	if rate != 20 {
		t.Fatalf("rate = %v, want 20", rate)
	}
	if !almostEqual(tot.HT, 1099.98) {
		t.Fatalf("HT = %v, want 1099.98", tot.HT)
	}
	if !almostEqual(tot.TVA, 219.996) {
		t.Fatalf("TVA = %v, want 219.996", tot.TVA)
	}
	if !almostEqual(tot.TTC, tot.HT+tot.TVA) {
		t.Fatalf("TTC = %v, want HT+TVA", tot.TTC)
	}
}

func TestResolveTotalsOverrideWins(t *testing.T) {
	items := []QuoteItemData{{Quantity: "1", UnitPrice: "100.00"}}
	tot, _ := ResolveTotals(items, "20", "250.00", "", "")
	if !almostEqual(tot.HT, 250) {
		t.Fatalf("override HT should win: got %v", tot.HT)
	}
	// TVA and TTC derive from the resolved HT when not overridden.
	if !almostEqual(tot.TVA, 50) || !almostEqual(tot.TTC, 300) {
		t.Fatalf("derived TVA/TTC = %v/%v, want 50/300", tot.TVA, tot.TTC)
	}
}

// The three fields resolve independently; an inconsistent TTC override is
// rendered as given, never corrected.
func TestResolveTotalsIndependentFields(t *testing.T) {
	items := []QuoteItemData{{Quantity: "1", UnitPrice: "100.00"}}
	tot, _ := ResolveTotals(items, "20", "", "", "999.00")
	if !almostEqual(tot.HT, 100) || !almostEqual(tot.TVA, 20) {
		t.Fatalf("HT/TVA = %v/%v, want 100/20", tot.HT, tot.TVA)
	}
	if !almostEqual(tot.TTC, 999) {
		t.Fatalf("TTC override should be kept as given, got %v", tot.TTC)
	}
}

func TestResolveTotalsZeroOverrideFallsBack(t *testing.T) {
	items := []QuoteItemData{{Quantity: "3", UnitPrice: "10"}}
	tot, _ := ResolveTotals(items, "", "0", "garbage", "")
	if !almostEqual(tot.HT, 30) {
		t.Fatalf("zero override must fall back to computed HT, got %v", tot.HT)
	}
	if !almostEqual(tot.TVA, 6) {
		t.Fatalf("unparsable override must fall back, got %v", tot.TVA)
	}
}

func TestResolveTotalsRateDefault(t *testing.T) {
	_, rate := ResolveTotals(nil, "", "", "", "")
	if rate != 20 {
		t.Fatalf("missing rate should default to 20, got %v", rate)
	}
	_, rate = ResolveTotals(nil, "5.5", "", "", "")
	if rate != 5.5 {
		t.Fatalf("rate = %v, want 5.5", rate)
	}
}

func TestResolveTotalsCoercion(t *testing.T) {
	items := []QuoteItemData{
		{Quantity: "oops", UnitPrice: "100"},
		{Quantity: "2", UnitPrice: "n/a"},
		{Quantity: "4", UnitPrice: "25"},
	}
	tot, _ := ResolveTotals(items, "20", "", "", "")
	if !almostEqual(tot.HT, 100) {
		t.Fatalf("unparsable fields must coerce to 0: HT = %v, want 100", tot.HT)
	}
}
