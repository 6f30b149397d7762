// Package quantity extracts a leading numeric or textual quantity and an
// adjacent unit token from a text fragment. Extraction is total: malformed
// input yields an empty result with zero consumed, never an error.
package quantity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grocerly/recipetext/internal/domain/parse"
	"github.com/grocerly/recipetext/internal/parser/lexicon"
)

// Result is the outcome of one extraction. Consumed is the number of bytes
// to slice off the head of the fragment; it covers the quantity and, when
// one was resolved, the unit token.
type Result struct {
	Quantity parse.Quantity
	Unit     string
	Consumed int
}

// number matches a mixed number, a fraction, a decimal, or an integer.
const number = `(\d+\s+\d+/\d+|\d+/\d+|\d*\.\d+|\d+)`

var (
	reRange  = regexp.MustCompile(`^` + number + `(?:\s*[-–—]\s*|\s+to\s+)` + number)
	reNumber = regexp.MustCompile(`^` + number)
	reWord   = regexp.MustCompile(`^([A-Za-z]+)`)
)

// Extract parses the head of a fragment. Recognition priority: numeric
// range, mixed number, vulgar fraction, decimal/integer, spelled-out number
// word. Unicode fraction glyphs are expanded before matching, so byte
// offsets are computed against the expanded text; callers must pass
// fragments already run through lexicon.ExpandFractionGlyphs when they need
// offsets into their own copy.
func Extract(fragment string) Result {
	frag := lexicon.ExpandFractionGlyphs(fragment)
	trimmed := strings.TrimLeft(frag, " \t")
	lead := len(frag) - len(trimmed)

	var q parse.Quantity
	var numEnd int

	if m := reRange.FindStringSubmatch(trimmed); m != nil {
		lo, okLo := parseNumber(m[1])
		hi, okHi := parseNumber(m[2])
		if okLo && okHi && hi >= lo {
			q = parse.Quantity{Min: lo, Max: hi}
			numEnd = len(m[0])
		}
	}
	if q.IsZero() {
		if m := reNumber.FindStringSubmatch(trimmed); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				q = parse.Quantity{Min: v}
				numEnd = len(m[0])
			}
		}
	}
	if q.IsZero() {
		if m := reWord.FindStringSubmatch(trimmed); m != nil {
			if v, ok := lexicon.NumberWord(m[1]); ok {
				q = parse.Quantity{Min: v}
				numEnd = len(m[0])
			}
		}
	}
	if q.IsZero() {
		return Result{}
	}

	unit, unitEnd := matchUnit(trimmed[numEnd:])
	return Result{
		Quantity: q,
		Unit:     unit,
		Consumed: lead + numEnd + unitEnd,
	}
}

// matchUnit tests the next one or two whitespace-delimited tokens against
// the unit alias table, preferring the longer match ("fl. oz" over "fl").
// It returns the canonical unit and the bytes consumed including leading
// whitespace, or ("", 0) when the next token is not a unit.
func matchUnit(rest string) (string, int) {
	trimmed := strings.TrimLeft(rest, " \t")
	lead := len(rest) - len(trimmed)
	if trimmed == "" {
		return "", 0
	}

	first, afterFirst := nextToken(trimmed)
	if first == "" {
		return "", 0
	}
	if second, afterSecond := nextToken(strings.TrimLeft(trimmed[afterFirst:], " \t")); second != "" {
		pair := first + " " + second
		if u, ok := lexicon.CanonicalUnit(pair); ok {
			skip := len(trimmed[afterFirst:]) - len(strings.TrimLeft(trimmed[afterFirst:], " \t"))
			return u, lead + afterFirst + skip + afterSecond
		}
	}
	if u, ok := lexicon.CanonicalUnit(first); ok {
		return u, lead + afterFirst
	}
	return "", 0
}

// nextToken returns the leading run of non-space characters and its length.
func nextToken(s string) (string, int) {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		end = len(s)
	}
	return s[:end], end
}

// parseNumber evaluates a numeric token: mixed number, fraction, decimal,
// or integer.
func parseNumber(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if fields := strings.Fields(tok); len(fields) == 2 {
		whole, ok1 := parseNumber(fields[0])
		frac, ok2 := parseNumber(fields[1])
		if ok1 && ok2 {
			return whole + frac, true
		}
		return 0, false
	}
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
