package numfmt

import "testing"

func TestAbbreviate_ThresholdBoundary(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()

	tests := []struct {
		name   string
		value  float64
		places int
		want   string
	}{
		{"just below threshold stays plain", 9999, 2, "9999"},
		{"at threshold gets first tier", 10000, 2, "10 K"},
		{"plain value keeps fraction", 1234.567, 2, "1234.57"},
		{"plain negative", -42.5, 1, "-42.5"},
		{"zero", 0, 2, "0"},
		{"tiny negative rounds to bare zero", -0.001, 2, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Abbreviate(tt.value, tt.places, opts); got != tt.want {
				t.Errorf("Abbreviate(%g, %d) = %q, want %q", tt.value, tt.places, got, tt.want)
			}
		})
	}
}

func TestAbbreviate_TierSelection(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()

	tests := []struct {
		name   string
		value  float64
		places int
		want   string
	}{
		{"thousands", 12500, 2, "12.5 K"},
		{"millions", 1234567, 2, "1.23 M"},
		{"billions", 123456789123, 2, "123.46 B"},
		{"trillions", 7.2e12, 1, "7.2 T"},
		{"quadrillions", 3e15, 0, "3 Qa"},
		{"quintillions", 9.5e18, 1, "9.5 Qi"},
		{"decillions", 2e33, 0, "2 Dc"},
		{"beyond the table reuses the top tier", 1e36, 0, "1000 Dc"},
		{"negative reapplies sign", -1234567, 2, "-1.23 M"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Abbreviate(tt.value, tt.places, opts); got != tt.want {
				t.Errorf("Abbreviate(%g, %d) = %q, want %q", tt.value, tt.places, got, tt.want)
			}
		})
	}
}

func TestAbbreviate_RoundHalfToEven(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()

	// 1.25 M and 1.75 M are both exactly halfway at one decimal place;
	// banker's rounding sends both to the even neighbor.
	if got := Abbreviate(1250000, 1, opts); got != "1.2 M" {
		t.Errorf("Abbreviate(1250000, 1) = %q, want %q", got, "1.2 M")
	}
	if got := Abbreviate(1750000, 1, opts); got != "1.8 M" {
		t.Errorf("Abbreviate(1750000, 1) = %q, want %q", got, "1.8 M")
	}
	if got := Abbreviate(12500, 0, opts); got != "12 K" {
		t.Errorf("Abbreviate(12500, 0) = %q, want %q", got, "12 K")
	}
	if got := Abbreviate(13500, 0, opts); got != "14 K" {
		t.Errorf("Abbreviate(13500, 0) = %q, want %q", got, "14 K")
	}
}

func TestSuffixTable_ContiguousAscending(t *testing.T) {
	t.Parallel()
	for i, tier := range suffixTable {
		if tier.exp != i+1 {
			t.Errorf("suffixTable[%d].exp = %d, want %d (contiguous powers of 1000 from exponent 1)", i, tier.exp, i+1)
		}
		if tier.label == "" {
			t.Errorf("suffixTable[%d] has an empty label", i)
		}
	}
	if last := suffixTable[len(suffixTable)-1].exp; last < 11 {
		t.Errorf("suffix table must reach at least 10^33, top exponent %d", last)
	}
}
