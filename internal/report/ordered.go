package report

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderedTotals accumulates amounts per key while remembering first-insertion
// order. The accumulators behind highestCategory and mostExpensiveDay resolve
// ties by whichever key was inserted first, so a plain Go map (with its
// randomized iteration) cannot back them.
type OrderedTotals struct {
	keys   []string
	totals map[string]decimal.Decimal
}

// NewOrderedTotals returns an empty accumulator.
func NewOrderedTotals() *OrderedTotals {
	return &OrderedTotals{totals: make(map[string]decimal.Decimal)}
}

// Add accumulates amount under key, registering the key on first sight.
func (o *OrderedTotals) Add(key string, amount decimal.Decimal) {
	if _, seen := o.totals[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.totals[key] = o.totals[key].Add(amount)
}

// Get returns the accumulated amount for key (zero if absent).
func (o *OrderedTotals) Get(key string) decimal.Decimal {
	return o.totals[key]
}

// Keys returns the keys in first-insertion order.
func (o *OrderedTotals) Keys() []string {
	return o.keys
}

// Len returns the number of distinct keys.
func (o *OrderedTotals) Len() int {
	return len(o.keys)
}

// Max returns the key with the largest total and that total. Ties resolve to
// the first-inserted key; an empty accumulator returns ("", 0).
func (o *OrderedTotals) Max() (string, decimal.Decimal) {
	bestKey := ""
	best := decimal.Zero
	for _, k := range o.keys {
		if o.totals[k].GreaterThan(best) {
			best = o.totals[k]
			bestKey = k
		}
	}
	return bestKey, best
}

// MarshalJSON renders the accumulator as a JSON object with keys in
// first-insertion order.
func (o *OrderedTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.totals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
