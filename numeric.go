package composite

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultExponentDigits = 6
	defaultFixedDigits    = 2
	defaultGroupedDigits  = 2
	defaultPercentDigits  = 2
	defaultGeneralDigits  = 15
)

// formatSpec is a validated numeric format specifier: a single letter from
// the supported set plus an optional one or two digit precision.
type formatSpec struct {
	letter       byte
	precision    int
	hasPrecision bool
}

func (s formatSpec) precisionOr(fallback int) int {
	if s.hasPrecision {
		return s.precision
	}
	return fallback
}

// parseFormatSpec validates the specifier grammar. The empty specifier is
// handled by the caller; everything else must be letter + 0-2 digits with
// the letter drawn from {d,e,f,g,n,p,x} in either case.
func parseFormatSpec(format string) (formatSpec, error) {
	if len(format) < 1 || len(format) > 3 {
		return formatSpec{}, &InvalidFormatError{Format: format}
	}

	letter := format[0]
	switch letter {
	case 'd', 'D', 'e', 'E', 'f', 'F', 'g', 'G', 'n', 'N', 'p', 'P', 'x', 'X':
	default:
		return formatSpec{}, &InvalidFormatError{Format: format}
	}

	spec := formatSpec{letter: letter}
	if len(format) > 1 {
		for i := 1; i < len(format); i++ {
			if format[i] < '0' || format[i] > '9' {
				return formatSpec{}, &InvalidFormatError{Format: format}
			}
		}
		precision, err := strconv.Atoi(format[1:])
		if err != nil {
			return formatSpec{}, &InvalidFormatError{Format: format}
		}
		spec.precision = precision
		spec.hasPrecision = true
	}

	return spec, nil
}

// formatNumeric renders a numeric value through a validated specifier. The
// provider supplies locale conventions for the locale-aware letters (f, n,
// p); the remaining letters are locale-invariant.
func formatNumeric(value resolvedValue, spec formatSpec, provider CultureProvider) string {
	switch spec.letter {
	case 'd', 'D':
		neg, magnitude := value.intMagnitude()
		return formatDecimalInt(neg, magnitude, spec.precisionOr(0))
	case 'e':
		return strconv.FormatFloat(value.num, 'e', spec.precisionOr(defaultExponentDigits), 64)
	case 'E':
		return strconv.FormatFloat(value.num, 'E', spec.precisionOr(defaultExponentDigits), 64)
	case 'f', 'F':
		return provider.FixedPoint(value.num, spec.precisionOr(defaultFixedDigits))
	case 'g':
		return strconv.FormatFloat(value.num, 'g', spec.precisionOr(defaultGeneralDigits), 64)
	case 'G':
		return strconv.FormatFloat(value.num, 'G', spec.precisionOr(defaultGeneralDigits), 64)
	case 'n', 'N':
		return provider.GroupedDecimal(value.num, spec.precisionOr(defaultGroupedDigits))
	case 'p', 'P':
		return provider.Percent(value.num, spec.precisionOr(defaultPercentDigits))
	case 'x':
		neg, magnitude := value.intMagnitude()
		return formatHexInt(neg, magnitude, spec.precisionOr(0), false)
	case 'X':
		neg, magnitude := value.intMagnitude()
		return formatHexInt(neg, magnitude, spec.precisionOr(0), true)
	default:
		panic(fmt.Sprintf("composite: unreachable format letter %q", spec.letter))
	}
}

// intMagnitude returns the sign and unsigned magnitude the d and x styles
// operate on. Fractional values truncate toward zero; NaN maps to zero and
// infinities clamp to the int64 range.
func (v resolvedValue) intMagnitude() (bool, uint64) {
	switch {
	case v.isUint:
		return false, v.uinteger
	case v.isInt:
		return splitSign(v.integer)
	}

	f := math.Trunc(v.num)
	switch {
	case math.IsNaN(f):
		return false, 0
	case f <= math.MinInt64:
		return true, uint64(math.MaxInt64) + 1
	case f >= math.MaxInt64:
		return false, uint64(math.MaxInt64)
	case f < 0:
		return true, uint64(-f)
	default:
		return false, uint64(f)
	}
}

// formatDecimalInt renders a base-10 magnitude zero-padded to at least width
// digits, sign excluded from the digit count.
func formatDecimalInt(neg bool, magnitude uint64, width int) string {
	digits := strconv.FormatUint(magnitude, 10)
	return signPrefix(neg) + leftPadZeros(digits, width)
}

// formatHexInt renders the magnitude in base 16 with a minus prefix for
// negatives, zero-padded to at least width digits.
func formatHexInt(neg bool, magnitude uint64, width int, upper bool) string {
	digits := strconv.FormatUint(magnitude, 16)
	if upper {
		digits = strings.ToUpper(digits)
	}
	return signPrefix(neg) + leftPadZeros(digits, width)
}

func splitSign(value int64) (bool, uint64) {
	if value < 0 {
		return true, uint64(-(value + 1)) + 1
	}
	return false, uint64(value)
}

func signPrefix(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

func leftPadZeros(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
