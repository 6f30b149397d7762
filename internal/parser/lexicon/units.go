// Package lexicon provides the static dictionaries the parsing engine is
// built on: unit aliases, number words, item synonyms, category rules, and
// the instruction lexicons. All tables are package-level immutable values
// built once at process start; lookups never mutate state, so the package
// is safe for concurrent use.
package lexicon

import "strings"

// unitAliases maps every recognized spelling of a measurement unit to its
// canonical form. Keys are normalized: lowercase, "." and "-" replaced by
// spaces, surrounding whitespace trimmed.
var unitAliases = map[string]string{
	// volume
	"tsp": "tsp", "tsps": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tbsps": "tbsp", "tbs": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"c": "cup", "cup": "cup", "cups": "cup",
	"fl oz": "fl oz", "fluid ounce": "fl oz", "fluid ounces": "fl oz",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"pt": "pint", "pint": "pint", "pints": "pint",
	"qt": "quart", "quart": "quart", "quarts": "quart",
	"gal": "gallon", "gallon": "gallon", "gallons": "gallon",

	// weight
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",

	// small measures
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",
	"drop": "drop", "drops": "drop",
	"splash": "splash", "splashes": "splash",

	// countable measures
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"stick": "stick", "sticks": "stick",
	"bunch": "bunch", "bunches": "bunch",
	"head": "head", "heads": "head",
	"sprig": "sprig", "sprigs": "sprig",
	"stalk": "stalk", "stalks": "stalk",
	"ear": "ear", "ears": "ear",

	// containers double as units ("2 cans tomatoes")
	"can": "can", "cans": "can",
	"jar": "jar", "jars": "jar",
	"package": "package", "packages": "package", "pkg": "package", "pkgs": "package",
	"bottle": "bottle", "bottles": "bottle",
	"box": "package", "boxes": "package",
	"bag": "package", "bags": "package",
}

// containerUnits is the set of canonical units that describe packaging
// rather than a measured amount of the ingredient itself.
var containerUnits = map[string]bool{
	"can":     true,
	"jar":     true,
	"package": true,
	"bottle":  true,
}

// bareCountables are nouns that act as an implicit unit when a line has a
// quantity but no recognized unit ("3 eggs", "2 cloves garlic").
var bareCountables = map[string]string{
	"egg": "egg", "eggs": "egg",
	"clove": "clove", "cloves": "clove",
	"bunch": "bunch", "bunches": "bunch",
	"stick": "stick", "sticks": "stick",
	"head": "head", "heads": "head",
	"slice": "slice", "slices": "slice",
}

// NormalizeUnitToken lowercases a token and folds "." and "-" to spaces so
// that "fl. oz" and "fl-oz" both resolve through the alias table.
func NormalizeUnitToken(tok string) string {
	tok = strings.Trim(strings.ToLower(tok), ",;:")
	tok = strings.ReplaceAll(tok, ".", " ")
	tok = strings.ReplaceAll(tok, "-", " ")
	return strings.Join(strings.Fields(tok), " ")
}

// CanonicalUnit resolves a raw token against the unit alias table. The
// empty string and false are returned when the token is not a known unit.
func CanonicalUnit(tok string) (string, bool) {
	u, ok := unitAliases[NormalizeUnitToken(tok)]
	return u, ok
}

// IsContainerUnit reports whether a canonical unit names packaging.
func IsContainerUnit(unit string) bool {
	return containerUnits[unit]
}

// BareCountable resolves a noun that doubles as a unit ("egg", "clove").
func BareCountable(tok string) (string, bool) {
	u, ok := bareCountables[strings.ToLower(tok)]
	return u, ok
}

// ContainerKindFor maps a container word to its canonical kind, accepting
// plural forms. It returns "" when the word is not a container.
func ContainerKindFor(word string) string {
	u, ok := unitAliases[NormalizeUnitToken(word)]
	if !ok || !containerUnits[u] {
		return ""
	}
	return u
}
