package composite

import "testing"

func TestCultureFixedPoint(t *testing.T) {
	de := builtinCultures["de"]

	if got := de.FixedPoint(1234567.5, 2); got != "1234567,50" {
		t.Fatalf("FixedPoint = %q", got)
	}
	if got := de.FixedPoint(-0.25, 1); got != "-0,2" {
		t.Fatalf("FixedPoint negative = %q", got)
	}
}

func TestCultureGroupedDecimal(t *testing.T) {
	cases := []struct {
		culture  string
		value    float64
		decimals int
		want     string
	}{
		{culture: "en", value: 1234567.891, decimals: 2, want: "1,234,567.89"},
		{culture: "en", value: 999, decimals: 0, want: "999"},
		{culture: "en", value: 1000, decimals: 0, want: "1,000"},
		{culture: "de", value: -9876543.21, decimals: 2, want: "-9.876.543,21"},
		{culture: "en-IN", value: 123456789, decimals: 0, want: "12,34,56,789"},
	}

	for _, tc := range cases {
		culture := builtinCultures[tc.culture]
		if got := culture.GroupedDecimal(tc.value, tc.decimals); got != tc.want {
			t.Fatalf("[%s] GroupedDecimal(%v, %d) = %q, want %q",
				tc.culture, tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestCulturePercentPattern(t *testing.T) {
	custom := Culture{
		Locale:         "xx",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentPattern: "{n} pct",
	}

	if got := custom.Percent(0.125, 1); got != "12,5 pct" {
		t.Fatalf("Percent = %q", got)
	}
}

func TestCultureZeroValueDefaults(t *testing.T) {
	// A zero Culture renders like an ungrouped period-decimal locale.
	var c Culture

	if got := c.FixedPoint(12.5, 2); got != "12.50" {
		t.Fatalf("FixedPoint = %q", got)
	}
	if got := c.GroupedDecimal(1234.5, 1); got != "1234.5" {
		t.Fatalf("GroupedDecimal = %q", got)
	}
	if got := c.Percent(0.5, 0); got != "50%" {
		t.Fatalf("Percent = %q", got)
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		digits string
		sep    string
		sizes  []int
		want   string
	}{
		{digits: "1", sep: ",", sizes: []int{3}, want: "1"},
		{digits: "123", sep: ",", sizes: []int{3}, want: "123"},
		{digits: "1234", sep: ",", sizes: []int{3}, want: "1,234"},
		{digits: "1234567", sep: ".", sizes: []int{3}, want: "1.234.567"},
		{digits: "12345678", sep: ",", sizes: []int{3, 2}, want: "1,23,45,678"},
		{digits: "1234", sep: "", sizes: []int{3}, want: "1234"},
	}

	for _, tc := range cases {
		if got := groupDigits(tc.digits, tc.sep, tc.sizes); got != tc.want {
			t.Fatalf("groupDigits(%q, %q, %v) = %q, want %q",
				tc.digits, tc.sep, tc.sizes, got, tc.want)
		}
	}
}

func TestXTextCultureEnglish(t *testing.T) {
	provider := newXTextCulture("en")

	if got := provider.GroupedDecimal(1234567.891, 2); got != "1,234,567.89" {
		t.Fatalf("GroupedDecimal = %q", got)
	}
	if got := provider.FixedPoint(1234.5, 2); got != "1234.50" {
		t.Fatalf("FixedPoint = %q", got)
	}
	if got := provider.Percent(0.125, 1); got != "12.5%" {
		t.Fatalf("Percent = %q", got)
	}
}

func TestXTextCultureDecimalSepProbe(t *testing.T) {
	de := newXTextCulture("de")
	if de.decimalSep != "," {
		t.Fatalf("de decimal separator = %q", de.decimalSep)
	}

	en := newXTextCulture("en")
	if en.decimalSep != "." {
		t.Fatalf("en decimal separator = %q", en.decimalSep)
	}
}
