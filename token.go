package composite

import "regexp"

// placeholderPattern matches ${key}, ${key,alignment}, ${key:format} and
// ${key,alignment:format}. Keys and alignment fields exclude the separator
// characters; format fields run to the closing brace. All captures are
// non-greedy so the first closing brace terminates the span.
var placeholderPattern = regexp.MustCompile(`\$\{([^,:}]+?)(?:,([^,:}]+?))?(?::([^}]*?))?\}`)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentPlaceholder
)

// segment is one non-overlapping span of a template: either literal text to
// copy verbatim or a parsed placeholder to resolve and render.
type segment struct {
	kind segmentKind
	text string

	key          string
	alignment    string
	hasAlignment bool
	format       string
	hasFormat    bool
}

// tokenize splits a template into ordered segments in a single left-to-right
// pass. Malformed candidates (no closing brace, empty key text before a
// separator) do not match the pattern and survive as literal text.
func tokenize(template string) []segment {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return []segment{{kind: segmentLiteral, text: template}}
	}

	segments := make([]segment, 0, len(matches)*2+1)
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			segments = append(segments, segment{kind: segmentLiteral, text: template[last:start]})
		}

		seg := segment{
			kind: segmentPlaceholder,
			text: template[start:end],
			key:  template[m[2]:m[3]],
		}
		if m[4] >= 0 {
			seg.alignment = template[m[4]:m[5]]
			seg.hasAlignment = true
		}
		if m[6] >= 0 {
			seg.format = template[m[6]:m[7]]
			seg.hasFormat = true
		}

		segments = append(segments, seg)
		last = end
	}

	if last < len(template) {
		segments = append(segments, segment{kind: segmentLiteral, text: template[last:]})
	}

	return segments
}
