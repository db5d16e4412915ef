package composite

// builtinCultures carries numeric conventions for the locales shipped by
// default. Locales outside this table fall back to the x/text backend, so
// the table only needs entries where we want rule-exact output or where a
// regional convention differs from its parent.
var builtinCultures = map[string]Culture{
	"en": {
		Locale:         "en",
		DecimalSep:     ".",
		GroupSep:       ",",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"en-GB": {
		Locale:         "en-GB",
		DecimalSep:     ".",
		GroupSep:       ",",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"en-IN": {
		Locale:         "en-IN",
		DecimalSep:     ".",
		GroupSep:       ",",
		GroupSizes:     []int{3, 2},
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"es": {
		Locale:         "es",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n} %",
	},
	"de": {
		Locale:         "de",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n} %",
	},
	"fr": {
		Locale:         "fr",
		DecimalSep:     ",",
		GroupSep:       " ",
		PercentSymbol:  "%",
		PercentPattern: "{n} %",
	},
	"it": {
		Locale:         "it",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"nl": {
		Locale:         "nl",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"pt": {
		Locale:         "pt",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"pt-BR": {
		Locale:         "pt-BR",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"sv": {
		Locale:         "sv",
		DecimalSep:     ",",
		GroupSep:       " ",
		PercentSymbol:  "%",
		PercentPattern: "{n} %",
	},
	"pl": {
		Locale:         "pl",
		DecimalSep:     ",",
		GroupSep:       " ",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"ru": {
		Locale:         "ru",
		DecimalSep:     ",",
		GroupSep:       " ",
		PercentSymbol:  "%",
		PercentPattern: "{n} %",
	},
	"ja": {
		Locale:         "ja",
		DecimalSep:     ".",
		GroupSep:       ",",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"zh": {
		Locale:         "zh",
		DecimalSep:     ".",
		GroupSep:       ",",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"ko": {
		Locale:         "ko",
		DecimalSep:     ".",
		GroupSep:       ",",
		PercentSymbol:  "%",
		PercentPattern: "{n}%",
	},
	"tr": {
		Locale:         "tr",
		DecimalSep:     ",",
		GroupSep:       ".",
		PercentSymbol:  "%",
		PercentPattern: "%{n}",
	},
}
