package composite

import (
	"fmt"
	"math"
	"strconv"
)

// Source supplies values for placeholder keys. Resolve receives the key text
// exactly as it appears in the template plus the raw format field (empty when
// none was given) and reports whether a value exists. Returning ok=false is
// the only way to signal absence; a nil value with ok=true renders nil's
// natural string form.
type Source interface {
	Resolve(key, format string) (any, bool)
}

// Substitutions adapts a plain key/value map to the Source contract. Lookup
// distinguishes a missing key from a key present with a nil value.
type Substitutions map[string]any

func (s Substitutions) Resolve(key, _ string) (any, bool) {
	value, ok := s[key]
	return value, ok
}

// ResolverFunc adapts a callback to the Source contract. The callback is
// invoked exactly once per placeholder occurrence.
type ResolverFunc func(key, format string) (any, bool)

func (fn ResolverFunc) Resolve(key, format string) (any, bool) {
	return fn(key, format)
}

type valueKind int

const (
	kindNumber valueKind = iota
	kindText
	kindOther
)

// resolvedValue is the closed sum the renderer dispatches on. Dynamic values
// are classified once at the boundary so format validation stays exhaustive.
type resolvedValue struct {
	kind valueKind

	num      float64
	integer  int64
	uinteger uint64
	isInt    bool
	isUint   bool

	text string
	raw  any
}

func classifyValue(value any) resolvedValue {
	switch v := value.(type) {
	case int:
		return intValue(int64(v))
	case int8:
		return intValue(int64(v))
	case int16:
		return intValue(int64(v))
	case int32:
		return intValue(int64(v))
	case int64:
		return intValue(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return uintValue(uint64(v))
		}
		return intValue(int64(v))
	case uint8:
		return intValue(int64(v))
	case uint16:
		return intValue(int64(v))
	case uint32:
		return intValue(int64(v))
	case uint64:
		// Values beyond int64 keep their unsigned magnitude.
		if v > math.MaxInt64 {
			return uintValue(v)
		}
		return intValue(int64(v))
	case float32:
		return floatValue(float64(v))
	case float64:
		return floatValue(v)
	case string:
		return resolvedValue{kind: kindText, text: v, raw: v}
	default:
		return resolvedValue{kind: kindOther, raw: value}
	}
}

func intValue(v int64) resolvedValue {
	return resolvedValue{kind: kindNumber, num: float64(v), integer: v, isInt: true}
}

func uintValue(v uint64) resolvedValue {
	return resolvedValue{kind: kindNumber, num: float64(v), uinteger: v, isUint: true}
}

func floatValue(v float64) resolvedValue {
	return resolvedValue{kind: kindNumber, num: v, integer: int64(v)}
}

// naturalString renders a value without any format specifier: round-trip-safe
// for numbers, verbatim for text, %v for everything else.
func (v resolvedValue) naturalString() string {
	switch v.kind {
	case kindNumber:
		switch {
		case v.isUint:
			return strconv.FormatUint(v.uinteger, 10)
		case v.isInt:
			return strconv.FormatInt(v.integer, 10)
		default:
			return formatFloatNatural(v.num)
		}
	case kindText:
		return v.text
	default:
		return fmt.Sprintf("%v", v.raw)
	}
}

// formatFloatNatural renders a float in plain decimal form with no grouping
// or forced precision, switching to exponential notation only past the
// magnitudes where a decimal expansion stops being useful (|v| >= 1e21 or
// |v| < 1e-6).
func formatFloatNatural(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
