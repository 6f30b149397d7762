package lexicon

import "strings"

// numberWords maps spelled-out quantities up to twelve. "a"/"an" count as
// one ("a pinch of salt" still reads as quantity 1 once the estimate stage
// has had its chance).
var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"half": 0.5, "a": 1, "an": 1,
}

// fractionGlyphs maps unicode vulgar-fraction glyphs to their ASCII
// fraction spelling. Substitution happens before any numeric matching so
// the rest of the extractor only ever sees "n/m" fractions.
var fractionGlyphs = map[rune]string{
	'¼': "1/4", '½': "1/2", '¾': "3/4",
	'⅓': "1/3", '⅔': "2/3",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
}

// NumberWord resolves a spelled-out number token.
func NumberWord(tok string) (float64, bool) {
	n, ok := numberWords[strings.ToLower(tok)]
	return n, ok
}

// ExpandFractionGlyphs rewrites unicode vulgar fractions as ASCII
// fractions, inserting a space when a glyph directly follows a digit so
// that "1½" becomes the mixed number "1 1/2".
func ExpandFractionGlyphs(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { _, ok := fractionGlyphs[r]; return ok }) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	var prev rune
	for _, r := range s {
		if frac, ok := fractionGlyphs[r]; ok {
			if prev >= '0' && prev <= '9' {
				b.WriteByte(' ')
			}
			b.WriteString(frac)
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
