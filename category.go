package guilders

// CategoryBucket is the converted sum of all accounts sharing a subtype.
type CategoryBucket struct {
	Name  Subtype `json:"name"`
	Value float64 `json:"value"`
}

// CategoryGrouping partitions the non-zero category buckets by sign.
// Positive holds only buckets with value > 0, Negative only value < 0.
type CategoryGrouping struct {
	Positive []CategoryBucket `json:"positive"`
	Negative []CategoryBucket `json:"negative"`
}

// CategorySums are the headline totals of a grouping. NegativeSum is the
// absolute sum of the negative buckets, so it is always non-negative;
// callers use both as percentage denominators.
type CategorySums struct {
	PositiveSum float64 `json:"positiveSum"`
	NegativeSum float64 `json:"negativeSum"`
}

// GroupByCategory folds accounts into per-subtype buckets, converting each
// value to the user currency. Every subtype gets an accumulator up front so
// iteration order is stable and no category is skipped for being absent
// from input. Buckets that net to exactly zero are dropped.
//
// A nil account slice yields an empty grouping.
func GroupByCategory(accounts []Account, rates *RateTable, userCurrency string) CategoryGrouping {
	grouping := CategoryGrouping{
		Positive: []CategoryBucket{},
		Negative: []CategoryBucket{},
	}
	if accounts == nil {
		return grouping
	}

	totals := make(map[Subtype]float64, len(Subtypes))
	for _, st := range Subtypes {
		totals[st] = 0
	}
	for _, a := range accounts {
		totals[a.Subtype] += Convert(a.Value.Float(), a.Currency, rates, userCurrency)
	}

	for _, st := range Subtypes {
		v := totals[st]
		switch {
		case v > 0:
			grouping.Positive = append(grouping.Positive, CategoryBucket{Name: st, Value: v})
		case v < 0:
			grouping.Negative = append(grouping.Negative, CategoryBucket{Name: st, Value: v})
		}
	}
	return grouping
}

// Sums returns the positive total and the absolute negative total of a
// grouping.
func Sums(g CategoryGrouping) CategorySums {
	var s CategorySums
	for _, b := range g.Positive {
		s.PositiveSum += b.Value
	}
	for _, b := range g.Negative {
		s.NegativeSum += -b.Value
	}
	return s
}
