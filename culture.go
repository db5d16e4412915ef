package composite

import (
	"strconv"
	"strings"
)

// CultureProvider renders the locale-aware numeric styles. The fixed-point
// style never groups digits; the grouped and percent styles follow the
// locale's separator and symbol conventions.
type CultureProvider interface {
	FixedPoint(value float64, decimals int) string
	GroupedDecimal(value float64, decimals int) string
	Percent(value float64, decimals int) string
}

// Culture holds the numeric conventions for one locale. A zero GroupSizes
// slice means the conventional western grouping of three digits.
type Culture struct {
	Locale         string
	DecimalSep     string
	GroupSep       string
	GroupSizes     []int
	PercentSymbol  string
	PercentPattern string
}

const percentPlaceholder = "{n}"

func (c Culture) decimalSep() string {
	if c.DecimalSep == "" {
		return "."
	}
	return c.DecimalSep
}

func (c Culture) groupSizes() []int {
	if len(c.GroupSizes) == 0 {
		return []int{3}
	}
	return c.GroupSizes
}

// FixedPoint renders value with exactly decimals fraction digits and the
// culture's decimal separator, without digit grouping.
func (c Culture) FixedPoint(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	return strings.Replace(formatted, ".", c.decimalSep(), 1)
}

// GroupedDecimal renders value with exactly decimals fraction digits, the
// culture's decimal separator, and thousands grouping.
func (c Culture) GroupedDecimal(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		fracPart = formatted[idx+1:]
	}

	grouped := groupDigits(intPart, c.GroupSep, c.groupSizes())
	if fracPart == "" {
		return sign + grouped
	}
	return sign + grouped + c.decimalSep() + fracPart
}

// Percent renders value multiplied by 100 using the culture's percent
// pattern. The numeric part follows the grouped-decimal conventions.
func (c Culture) Percent(value float64, decimals int) string {
	number := c.GroupedDecimal(value*100, decimals)

	pattern := c.PercentPattern
	if pattern == "" {
		pattern = percentPlaceholder + c.percentSymbol()
	}
	return strings.Replace(pattern, percentPlaceholder, number, 1)
}

func (c Culture) percentSymbol() string {
	if c.PercentSymbol == "" {
		return "%"
	}
	return c.PercentSymbol
}

// groupDigits inserts sep between digit groups, sized right to left. The
// last size repeats, matching CLDR grouping semantics (e.g. [3 2] yields
// 12,34,567 style output for Indian-system locales).
func groupDigits(digits, sep string, sizes []int) string {
	if sep == "" || len(digits) == 0 {
		return digits
	}

	groups := make([]string, 0, len(digits)/3+1)
	remaining := digits
	sizeIdx := 0

	for len(remaining) > 0 {
		size := sizes[sizeIdx]
		if sizeIdx < len(sizes)-1 {
			sizeIdx++
		}
		if size <= 0 || size >= len(remaining) {
			groups = append(groups, remaining)
			break
		}
		groups = append(groups, remaining[len(remaining)-size:])
		remaining = remaining[:len(remaining)-size]
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(sep)
		}
	}
	return b.String()
}
