package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-composite"
)

func main() {
	var (
		locale      = flag.String("locale", "", "locale for locale-aware specifiers (default: process locale)")
		template    = flag.String("t", "", "template containing ${key} placeholders")
		cultureFile = flag.String("cultures", "", "optional YAML/JSON culture definition file")
		value       = flag.String("value", "", "format a single value instead of a template")
		format      = flag.String("format", "", "format specifier used with -value")
	)
	flag.Parse()

	opts := []composite.Option{}
	if *locale != "" {
		opts = append(opts, composite.WithDefaultLocale(*locale))
	}
	if *cultureFile != "" {
		opts = append(opts, composite.WithCultureFiles(*cultureFile))
	}

	formatter, err := composite.New(opts...)
	if err != nil {
		fatal(err)
	}

	if *value != "" {
		result, err := formatter.FormatValue("", parseValue(*value), *format)
		if err != nil {
			fatal(err)
		}
		fmt.Println(result)
		return
	}

	if *template == "" {
		fmt.Fprintln(os.Stderr, "usage: composite -t 'template' key=value ... | composite -value N -format f2")
		os.Exit(2)
	}

	subs := composite.Substitutions{}
	for _, arg := range flag.Args() {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			fatal(fmt.Errorf("argument %q is not key=value", arg))
		}
		subs[key] = parseValue(raw)
	}

	result, err := formatter.Format("", *template, subs)
	if err != nil {
		fatal(err)
	}
	fmt.Println(result)
}

// parseValue keeps numeric-looking arguments numeric so format specifiers
// apply; everything else stays a string.
func parseValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func fatal(err error) {
	var keyErr *composite.KeyNotFoundError
	if errors.As(err, &keyErr) {
		fmt.Fprintf(os.Stderr, "composite: missing value for %q\n", keyErr.Key)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
