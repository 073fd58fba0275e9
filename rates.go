package guilders

// Rate is the price of one unit of the base currency expressed in Code.
type Rate struct {
	Code string  `json:"currency_code"`
	Rate float64 `json:"rate"`
}

// RateTable resolves currency codes to their exchange rate relative to a
// fixed base. A nil table is valid and behaves as an empty one.
type RateTable struct {
	rates map[string]float64
}

// NewRateTable builds a table from a list of rates. The last entry wins
// when a code appears twice.
func NewRateTable(rates []Rate) *RateTable {
	t := &RateTable{rates: make(map[string]float64, len(rates))}
	for _, r := range rates {
		t.rates[r.Code] = r.Rate
	}
	return t
}

// Rate returns the rate for a currency code, defaulting to 1 when the code
// is absent. Unknown currencies therefore behave as already being in base
// units; this is a documented simplification, not a silent bug.
func (t *RateTable) Rate(code string) float64 {
	if t == nil {
		return 1
	}
	if r, ok := t.rates[code]; ok {
		return r
	}
	return 1
}

// Len returns the number of known rates.
func (t *RateTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rates)
}

// Convert converts an amount from one currency to another through the
// table. It is pure and total for finite input:
//   - a nil table converts nothing (fail open, display base values),
//   - identical currencies short-circuit to avoid float drift,
//   - otherwise amount * rate(from) / rate(to).
func Convert(amount float64, from string, rates *RateTable, to string) float64 {
	if rates == nil || from == to {
		return amount
	}
	return amount * rates.Rate(from) / rates.Rate(to)
}
