package lexicon

import "strings"

// preparationForms is the fixed vocabulary of preparation states detected
// in descriptor clauses ("onion, finely chopped").
var preparationForms = map[string]bool{
	"chopped": true, "minced": true, "diced": true, "sliced": true,
	"grated": true, "shredded": true, "melted": true, "softened": true,
	"crushed": true, "peeled": true, "seeded": true, "halved": true,
	"quartered": true, "cubed": true, "julienned": true, "mashed": true,
	"beaten": true, "whisked": true, "rinsed": true, "drained": true,
	"trimmed": true, "zested": true, "juiced": true, "toasted": true,
	"crumbled": true, "sifted": true, "thawed": true, "cooled": true,
	"pitted": true, "deveined": true, "ground": true,
}

// qualifiers is the fixed vocabulary of size/state qualifiers kept on the
// record but stripped from the canonical item name. Multi-word entries are
// matched before their single-word components.
var qualifiers = []string{
	"boneless skinless", "extra virgin", "reduced sodium", "low sodium",
	"reduced fat", "low fat", "full fat", "whole wheat", "all purpose",
	"extra large",
	"large", "medium", "small", "ripe", "overripe", "fresh", "dried",
	"raw", "cooked", "boneless", "skinless", "lean", "unsalted", "salted",
	"organic", "whole", "baby", "mini", "jumbo", "firm", "soft",
}

// noteVocabulary is the fixed set of trailing clauses routed to the notes
// field (or, for "to taste", the toTaste flag).
var noteVocabulary = []string{
	"to taste",
	"optional",
	"divided",
	"for serving",
	"for garnish",
	"as needed",
	"at room temperature",
}

// estimatePhrases are vague quantity idioms that set the estimated flag and
// keep the phrase verbatim as the quantity text.
var estimatePhrases = []string{
	"a pinch of", "a pinch",
	"a dash of", "a dash",
	"a handful of", "a handful",
	"a splash of", "a splash",
	"a few", "a little", "some",
}

// IsPreparationForm reports whether a word names a preparation state.
func IsPreparationForm(word string) bool {
	return preparationForms[strings.ToLower(word)]
}

// Qualifiers returns the qualifier vocabulary in match order.
func Qualifiers() []string {
	return qualifiers
}

// NoteVocabulary returns the trailing-note vocabulary in match order.
func NoteVocabulary() []string {
	return noteVocabulary
}

// MatchEstimate tests whether text begins with a vague quantity phrase and
// returns the matched phrase (without a trailing "of") plus the number of
// bytes to consume. Longest phrases are listed first, so the first hit wins.
func MatchEstimate(text string) (phrase string, consumed int, ok bool) {
	lower := strings.ToLower(text)
	for _, p := range estimatePhrases {
		if strings.HasPrefix(lower, p) {
			end := len(p)
			if end < len(lower) && lower[end] != ' ' {
				continue
			}
			phrase = strings.TrimSuffix(p, " of")
			return phrase, end, true
		}
	}
	return "", 0, false
}
