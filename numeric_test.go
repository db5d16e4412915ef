package composite

import (
	"errors"
	"math"
	"testing"
)

func TestFormatValueDecimal(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{name: "pad to six", value: 1234, format: "d6", want: "001234"},
		{name: "no padding by default", value: 1234, format: "d", want: "1234"},
		{name: "width shorter than digits", value: 1234, format: "d2", want: "1234"},
		{name: "negative keeps sign outside digits", value: -1234, format: "d6", want: "-001234"},
		{name: "uppercase letter", value: 42, format: "D4", want: "0042"},
		{name: "float truncates toward zero", value: 12.9, format: "d", want: "12"},
		{name: "negative float truncates toward zero", value: -12.9, format: "d", want: "-12"},
		{name: "zero", value: 0, format: "d3", want: "000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatValue("", tc.value, tc.format)
			if err != nil {
				t.Fatalf("FormatValue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
			}
		})
	}
}

func TestFormatValueHex(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{name: "lowercase", value: 255, format: "x", want: "ff"},
		{name: "uppercase", value: 255, format: "X", want: "FF"},
		{name: "padded", value: 255, format: "x4", want: "00ff"},
		{name: "negative absolute value", value: -1234, format: "x", want: "-4d2"},
		{name: "negative uppercase padded", value: -1234, format: "X5", want: "-004D2"},
		{name: "zero", value: 0, format: "x2", want: "00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatValue("", tc.value, tc.format)
			if err != nil {
				t.Fatalf("FormatValue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
			}
		})
	}
}

func TestFormatValueExponential(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		value  any
		format string
		want   string
	}{
		{value: 1234.5678, format: "e2", want: "1.23e+03"},
		{value: 1234.5678, format: "E2", want: "1.23E+03"},
		{value: 0.00456, format: "e1", want: "4.6e-03"},
		{value: 1.5, format: "e", want: "1.500000e+00"},
	}

	for _, tc := range cases {
		got, err := f.FormatValue("", tc.value, tc.format)
		if err != nil {
			t.Fatalf("FormatValue(%v, %q): %v", tc.value, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatValueFixedPoint(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		locale string
		value  any
		format string
		want   string
	}{
		{locale: "en", value: 1234.5, format: "f", want: "1234.50"},
		{locale: "en", value: 1234.5, format: "f0", want: "1234"},
		{locale: "en", value: -2.375, format: "f2", want: "-2.38"},
		{locale: "de", value: 1234.5, format: "f2", want: "1234,50"},
		{locale: "fr", value: 0.5, format: "f1", want: "0,5"},
	}

	for _, tc := range cases {
		got, err := f.FormatValue(tc.locale, tc.value, tc.format)
		if err != nil {
			t.Fatalf("FormatValue(%v, %q): %v", tc.value, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("[%s] FormatValue(%v, %q) = %q, want %q", tc.locale, tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatValueGeneral(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		value  any
		format string
		want   string
	}{
		{value: 123.456, format: "g4", want: "123.5"},
		{value: 1234.0, format: "g2", want: "1.2e+03"},
		{value: 1234.0, format: "G2", want: "1.2E+03"},
		{value: 0.5, format: "g", want: "0.5"},
	}

	for _, tc := range cases {
		got, err := f.FormatValue("", tc.value, tc.format)
		if err != nil {
			t.Fatalf("FormatValue(%v, %q): %v", tc.value, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatValueGrouped(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		locale string
		value  any
		format string
		want   string
	}{
		{locale: "en", value: 1234567.891, format: "n2", want: "1,234,567.89"},
		{locale: "en", value: 1234, format: "n0", want: "1,234"},
		{locale: "de", value: 1234567.891, format: "n2", want: "1.234.567,89"},
		{locale: "fr", value: 1234567.891, format: "n2", want: "1 234 567,89"},
		{locale: "en-IN", value: 12345678.9, format: "n1", want: "1,23,45,678.9"},
		{locale: "en", value: -1234.5, format: "n2", want: "-1,234.50"},
	}

	for _, tc := range cases {
		got, err := f.FormatValue(tc.locale, tc.value, tc.format)
		if err != nil {
			t.Fatalf("[%s] FormatValue(%v, %q): %v", tc.locale, tc.value, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("[%s] FormatValue(%v, %q) = %q, want %q", tc.locale, tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatValuePercent(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		locale string
		value  any
		format string
		want   string
	}{
		{locale: "en", value: 0.5, format: "p0", want: "50%"},
		{locale: "en", value: 0.125, format: "p1", want: "12.5%"},
		{locale: "en", value: 0.125, format: "p", want: "12.50%"},
		{locale: "de", value: 0.125, format: "p1", want: "12,5 %"},
		{locale: "tr", value: 0.5, format: "p0", want: "%50"},
	}

	for _, tc := range cases {
		got, err := f.FormatValue(tc.locale, tc.value, tc.format)
		if err != nil {
			t.Fatalf("[%s] FormatValue(%v, %q): %v", tc.locale, tc.value, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("[%s] FormatValue(%v, %q) = %q, want %q", tc.locale, tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatValueLocaleOnlyAffectsLocaleAwareLetters(t *testing.T) {
	f := newTestFormatter(t)

	for _, format := range []string{"d4", "e2", "g4", "x4"} {
		en, err := f.FormatValue("en", 1234, format)
		if err != nil {
			t.Fatalf("FormatValue en %q: %v", format, err)
		}
		de, err := f.FormatValue("de", 1234, format)
		if err != nil {
			t.Fatalf("FormatValue de %q: %v", format, err)
		}
		if en != de {
			t.Fatalf("format %q differs by locale: en=%q de=%q", format, en, de)
		}
	}
}

func TestFormatValueEmptySpecifier(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int", value: 1234567, want: "1234567"},
		{name: "float stays decimal past a million", value: 1234567.5, want: "1234567.5"},
		{name: "float stays decimal at 1e20", value: 1e20, want: "100000000000000000000"},
		{name: "exponential from 1e21", value: 1e21, want: "1e+21"},
		{name: "small fraction stays decimal", value: 0.000001, want: "0.000001"},
		{name: "exponential below 1e-6", value: 0.0000005, want: "5e-07"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatValue("", tc.value, "")
			if err != nil {
				t.Fatalf("FormatValue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatValueUnsignedMagnitude(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{name: "max uint64 decimal", value: uint64(math.MaxUint64), format: "d", want: "18446744073709551615"},
		{name: "max uint64 hex", value: uint64(math.MaxUint64), format: "x", want: "ffffffffffffffff"},
		{name: "above int64 decimal", value: uint64(math.MaxInt64) + 1, format: "d", want: "9223372036854775808"},
		{name: "min int64 decimal", value: int64(math.MinInt64), format: "d", want: "-9223372036854775808"},
		{name: "min int64 hex", value: int64(math.MinInt64), format: "X", want: "-8000000000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatValue("", tc.value, tc.format)
			if err != nil {
				t.Fatalf("FormatValue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
			}
		})
	}
}

func TestFormatValueNonFiniteIntegerStyles(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name   string
		value  float64
		format string
		want   string
	}{
		{name: "nan decimal", value: math.NaN(), format: "d", want: "0"},
		{name: "nan hex", value: math.NaN(), format: "x", want: "0"},
		{name: "positive infinity clamps", value: math.Inf(1), format: "d", want: "9223372036854775807"},
		{name: "negative infinity clamps", value: math.Inf(-1), format: "d", want: "-9223372036854775808"},
		{name: "positive infinity hex", value: math.Inf(1), format: "x", want: "7fffffffffffffff"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatValue("", tc.value, tc.format)
			if err != nil {
				t.Fatalf("FormatValue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatValue(%v, %q) = %q, want %q", tc.value, tc.format, got, tc.want)
			}
		})
	}
}

func TestParseFormatSpecRejectsBadShapes(t *testing.T) {
	f := newTestFormatter(t)

	cases := []string{
		"z",    // unknown letter
		"q2",   // unknown letter with precision
		"5",    // digit first
		"d123", // precision longer than two digits
		"dx",   // non-digit precision
		"n2x",  // trailing garbage
		"ff2",  // doubled letter
	}

	for _, format := range cases {
		_, err := f.FormatValue("", 1, format)
		var fmtErr *InvalidFormatError
		if !errors.As(err, &fmtErr) {
			t.Fatalf("format %q: expected InvalidFormatError, got %v", format, err)
		}
		if fmtErr.Format != format {
			t.Fatalf("format %q: error carries %q", format, fmtErr.Format)
		}
	}
}
