package guilders

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// This file is the single place where loosely-typed amounts become numbers.
// Upstream sources serialize monetary values either as JSON numbers or as
// decimal strings; inside the engine everything is a finite float64.

// ParseAmount converts a decimal string to a finite float64.
// Unparseable or non-finite input yields 0.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Finite(f)
}

// Finite coerces NaN and infinities to 0.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount is a float64 that unmarshals from either a JSON number or a
// decimal string, coercing anything non-finite to 0.
type Amount float64

// UnmarshalJSON accepts 12.5, "12.5", or null (null reads as 0).
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(ParseAmount(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// A malformed scalar is a zero amount, not a decode failure.
		*a = 0
		return nil
	}
	*a = Amount(Finite(f))
	return nil
}

// MarshalJSON always writes a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float returns the amount as a plain float64.
func (a Amount) Float() float64 { return float64(a) }
