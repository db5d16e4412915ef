package composite

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// xtextCulture renders locale-aware numeric styles through golang.org/x/text
// for locales that have no explicit Culture entry. Grouping, separators, and
// percent placement come straight from the CLDR data x/text ships.
type xtextCulture struct {
	locale     string
	tag        language.Tag
	printer    *message.Printer
	decimalSep string
}

func newXTextCulture(locale string) *xtextCulture {
	tag := language.Make(locale)
	p := &xtextCulture{
		locale:  locale,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
	p.decimalSep = p.probeDecimalSep()
	return p
}

// probeDecimalSep renders a known fraction and extracts the separator rune
// between its digits. Falls back to a period when the probe is not
// recognizable (e.g. non-latin digit systems).
func (p *xtextCulture) probeDecimalSep() string {
	probe := p.printer.Sprintf("%v", number.Decimal(1.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var sep strings.Builder
	seenDigit := false
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if seenDigit && sep.Len() > 0 {
				return sep.String()
			}
			seenDigit = true
			continue
		}
		if seenDigit {
			sep.WriteRune(r)
		}
	}
	return "."
}

func (p *xtextCulture) FixedPoint(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	return strings.Replace(formatted, ".", p.decimalSep, 1)
}

func (p *xtextCulture) GroupedDecimal(value float64, decimals int) string {
	return p.printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

func (p *xtextCulture) Percent(value float64, decimals int) string {
	return p.printer.Sprintf("%v", number.Percent(value,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}
