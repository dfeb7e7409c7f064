package pdf

// Totals are the three amounts printed in the totals block.
type Totals struct {
	HT  float64
	TVA float64
	TTC float64
}

// ResolveTotals derives HT/TVA/TTC from the line items and the stored
// override values. Each field resolves independently: a nonzero parsable
// override wins, otherwise the computed amount is used. The three resolved
// values are deliberately not reconciled against each other; the document
// prints whatever the upstream application approved, even if a stale
// override no longer matches the items. The resolved TVA rate is returned
// for the tax-line label.
func ResolveTotals(items []QuoteItemData, tvaRate, overrideHT, overrideTVA, overrideTTC string) (Totals, float64) {
	rate := ParseDecimal(tvaRate)
	if rate == 0 {
		rate = 20
	}

	computed := 0.0
	for _, it := range items {
		computed += ParseDecimal(it.Quantity) * ParseDecimal(it.UnitPrice)
	}

	ht := computed
	if v := ParseDecimal(overrideHT); v != 0 {
		ht = v
	}
	tva := ht * rate / 100
	if v := ParseDecimal(overrideTVA); v != 0 {
		tva = v
	}
	ttc := ht + tva
	if v := ParseDecimal(overrideTTC); v != 0 {
		ttc = v
	}
	return Totals{HT: ht, TVA: tva, TTC: ttc}, rate
}
