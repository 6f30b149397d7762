package lexicon

import "strings"

// cookingVerbs is the fixed lexicon of action lemmas recognized in
// instruction steps. Lookup goes through ActionLemma, which strips simple
// -ing/-ed inflections first.
var cookingVerbs = map[string]bool{
	"add": true, "bake": true, "beat": true, "blend": true, "boil": true,
	"broil": true, "brown": true, "brush": true, "caramelize": true,
	"chill": true, "chop": true, "coat": true, "combine": true, "cook": true,
	"cool": true, "cover": true, "cut": true, "deglaze": true, "dice": true,
	"drain": true, "drizzle": true, "flip": true, "fold": true, "freeze": true,
	"fry": true, "garnish": true, "grate": true, "grease": true, "grill": true,
	"heat": true, "knead": true, "marinate": true, "mash": true, "melt": true,
	"mince": true, "mix": true, "pour": true, "preheat": true, "reduce": true,
	"refrigerate": true, "remove": true, "rest": true, "rinse": true,
	"roast": true, "roll": true, "saute": true, "sauté": true, "sear": true,
	"season": true, "serve": true, "shred": true, "simmer": true, "slice": true,
	"spread": true, "sprinkle": true, "steam": true, "stir": true, "strain": true,
	"stuff": true, "taste": true, "toast": true, "top": true, "toss": true,
	"transfer": true, "whisk": true, "whip": true,
}

// tools is the fixed equipment lexicon, multi-word entries first so that
// "baking sheet" wins over any shorter overlap.
var tools = []string{
	"dutch oven", "baking sheet", "sheet pan", "baking dish", "mixing bowl",
	"stand mixer", "hand mixer", "food processor", "cutting board",
	"wire rack", "parchment paper", "aluminum foil", "slow cooker",
	"pressure cooker", "cast iron skillet", "rolling pin", "instant read thermometer",
	"skillet", "saucepan", "pot", "pan", "oven", "mixer", "blender",
	"whisk", "bowl", "knife", "grill", "microwave", "colander", "spatula",
	"tongs", "thermometer", "foil", "wok", "ladle", "grater", "strainer",
}

// speedDescriptors are relative heat / mixer-speed phrases, compound forms
// first.
var speedDescriptors = []string{
	"medium-low", "medium-high", "medium low", "medium high",
	"low", "medium", "high",
}

// concurrencyMarkers flag a step intended to run alongside another.
var concurrencyMarkers = []string{
	"meanwhile", "while", "at the same time", "in a separate",
}

// donenessCues limits which "to ..." phrases count as doneness; "until ..."
// is always a doneness phrase. Without this guard "to 375°F" would leak in.
var donenessCues = []string{
	"a boil", "a simmer", "al dente", "golden", "tender", "crisp",
	"combined", "smooth", "stiff peaks", "soft peaks", "desired",
}

// ActionLemma resolves a word to a cooking-verb lemma, stripping -ing/-ed
// suffixes (with doubled-consonant and dropped-e repair) before lookup.
func ActionLemma(word string) (string, bool) {
	w := strings.ToLower(word)
	if cookingVerbs[w] {
		return w, true
	}
	for _, suffix := range []string{"ing", "ed"} {
		if !strings.HasSuffix(w, suffix) || len(w) <= len(suffix)+1 {
			continue
		}
		stem := w[:len(w)-len(suffix)]
		if cookingVerbs[stem] {
			return stem, true
		}
		// baking -> bak -> bake
		if cookingVerbs[stem+"e"] {
			return stem + "e", true
		}
		// stirring -> stirr -> stir
		if len(stem) > 2 && stem[len(stem)-1] == stem[len(stem)-2] && cookingVerbs[stem[:len(stem)-1]] {
			return stem[:len(stem)-1], true
		}
	}
	return "", false
}

// Tools returns the equipment lexicon in match order.
func Tools() []string {
	return tools
}

// SpeedDescriptors returns the heat/speed vocabulary in match order.
func SpeedDescriptors() []string {
	return speedDescriptors
}

// ConcurrencyMarkers returns the textual cues for concurrent steps.
func ConcurrencyMarkers() []string {
	return concurrencyMarkers
}

// IsDonenessCue reports whether a phrase following "to" describes a cooking
// endpoint rather than a temperature or destination.
func IsDonenessCue(phrase string) bool {
	_, ok := DonenessCue(phrase)
	return ok
}

// DonenessCue returns the doneness cue a phrase begins with, if any.
func DonenessCue(phrase string) (string, bool) {
	lower := strings.ToLower(phrase)
	for _, cue := range donenessCues {
		if strings.HasPrefix(lower, cue) {
			return cue, true
		}
	}
	return "", false
}
