package guilders

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 12.5 ", 12.5},
		{"-0.01", -0.01},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
	}
	for _, tc := range testCases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFinite(t *testing.T) {
	if got := Finite(math.NaN()); got != 0 {
		t.Errorf("Finite(NaN) = %v, want 0", got)
	}
	if got := Finite(math.Inf(1)); got != 0 {
		t.Errorf("Finite(+Inf) = %v, want 0", got)
	}
	if got := Finite(math.Inf(-1)); got != 0 {
		t.Errorf("Finite(-Inf) = %v, want 0", got)
	}
	if got := Finite(-2.5); got != -2.5 {
		t.Errorf("Finite(-2.5) = %v, want -2.5", got)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"string", `"12.5"`, 12.5},
		{"negative string", `"-50"`, -50},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
		{"non numeric scalar", `true`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.in, err)
			}
			if a.Float() != tc.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, a.Float(), tc.want)
			}
		})
	}
}

func TestAmount_RoundTrip(t *testing.T) {
	data, err := json.Marshal(Amount(12.5))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "12.5" {
		t.Errorf("Marshal(12.5) = %s, want 12.5", data)
	}
}
