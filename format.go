package composite

import (
	"strconv"
	"strings"
	"sync"
)

// Formatter renders composite templates. It is immutable after construction
// and safe for concurrent use; per-call state lives on the stack.
type Formatter struct {
	defaultLocale string
	registry      *CultureRegistry
	hooks         []FormatHook
}

// New builds a Formatter from the supplied options.
func New(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Formatter{
		defaultLocale: cfg.DefaultLocale,
		registry:      cfg.Registry,
		hooks:         cfg.Hooks,
	}, nil
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	f, err := New()
	if err != nil {
		panic(err)
	}
	return f
})

// Format renders template against source using the default engine and its
// default locale. Substitutions and ResolverFunc both satisfy Source.
func Format(template string, source Source) (string, error) {
	return defaultFormatter().Format("", template, source)
}

// FormatValue renders a single value through a numeric format specifier
// using the default engine and its default locale.
func FormatValue(value any, format string) (string, error) {
	return defaultFormatter().FormatValue("", value, format)
}

// Format renders every placeholder in template with values from source.
// An empty locale selects the formatter's default. On any failure the
// returned string is empty; partial output is never produced.
func (f *Formatter) Format(locale, template string, source Source) (string, error) {
	locale = f.effectiveLocale(locale)

	ctx := &FormatHookContext{Locale: locale, Template: template}
	f.beforeFormat(ctx)

	result, err := f.render(locale, template, source)

	ctx.Result = result
	ctx.Err = err
	f.afterFormat(ctx)

	return result, err
}

// FormatValue renders one value through a format specifier, outside of any
// template. The empty specifier yields the value's natural string form.
func (f *Formatter) FormatValue(locale string, value any, format string) (string, error) {
	return f.renderValue(f.effectiveLocale(locale), value, format)
}

func (f *Formatter) effectiveLocale(locale string) string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return f.defaultLocale
	}
	return locale
}

func (f *Formatter) render(locale, template string, source Source) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for _, seg := range tokenize(template) {
		if seg.kind == segmentLiteral {
			b.WriteString(seg.text)
			continue
		}

		value, ok := source.Resolve(seg.key, seg.format)
		if !ok {
			return "", &KeyNotFoundError{Key: seg.key}
		}

		rendered, err := f.renderValue(locale, value, seg.format)
		if err != nil {
			return "", err
		}

		if seg.hasAlignment {
			rendered, err = applyAlignment(rendered, seg.alignment)
			if err != nil {
				return "", err
			}
		}

		b.WriteString(rendered)
	}

	return b.String(), nil
}

func (f *Formatter) renderValue(locale string, value any, format string) (string, error) {
	resolved := classifyValue(value)

	if format == "" {
		return resolved.naturalString(), nil
	}

	if resolved.kind != kindNumber {
		return "", &InvalidFormatError{Format: format}
	}

	spec, err := parseFormatSpec(format)
	if err != nil {
		return "", err
	}

	return formatNumeric(resolved, spec, f.registry.Provider(locale)), nil
}

// applyAlignment pads text with spaces to the absolute alignment width:
// positive pads on the left, negative on the right. Padding counts bytes,
// not display columns; text at or beyond the width passes through.
func applyAlignment(text, raw string) (string, error) {
	width, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", &InvalidAlignmentError{Alignment: raw}
	}

	pad := width
	if pad < 0 {
		pad = -pad
	}
	if len(text) >= pad {
		return text, nil
	}

	filler := strings.Repeat(" ", pad-len(text))
	if width > 0 {
		return filler + text, nil
	}
	return text + filler, nil
}
