package lexicon

import (
	"strings"

	"github.com/grocerly/recipetext/internal/domain/parse"
)

// itemSynonyms folds known ingredient spellings to one canonical form.
// Keys and values are singular and lowercase. The table is deliberately a
// replaceable data set rather than logic: product teams tune it without
// touching the pipeline.
var itemSynonyms = map[string]string{
	"scallion":          "green onion",
	"spring onion":      "green onion",
	"coriander leaf":    "cilantro",
	"coriander leave":   "cilantro",
	"garbanzo bean":     "chickpea",
	"courgette":         "zucchini",
	"aubergine":         "eggplant",
	"capsicum":          "bell pepper",
	"powdered sugar":    "confectioners sugar",
	"icing sugar":       "confectioners sugar",
	"caster sugar":      "superfine sugar",
	"corn starch":       "cornstarch",
	"corn flour":        "cornstarch",
	"bicarbonate of soda": "baking soda",
	"rocket":            "arugula",
	"prawn":             "shrimp",
	"mange tout":        "snow pea",
	"beetroot":          "beet",
	"tomato paste puree": "tomato paste",
	"extra virgin olive oil": "olive oil",
}

// categoryRule classifies a canonical item by keyword. Rules are evaluated
// in order and the first match wins, so the more specific entries must stay
// ahead of broad ones (e.g. "black pepper" before bare "pepper" patterns).
type categoryRule struct {
	keywords []string
	category parse.Category
}

var categoryRules = []categoryRule{
	// exact-leaning overrides first
	{[]string{"black pepper", "white pepper", "cayenne", "red pepper flake", "peppercorn"}, parse.CategoryPantry},
	{[]string{"salt", "sugar", "flour", "oil", "vinegar", "sauce", "soy sauce", "paste", "stock", "broth",
		"baking soda", "baking powder", "yeast", "cornstarch", "honey", "syrup", "extract",
		"rice", "pasta", "noodle", "bean", "lentil", "chickpea", "oat", "cereal", "spice",
		"cumin", "paprika", "oregano", "cinnamon", "nutmeg", "chili powder", "curry",
		"mustard", "mayonnaise", "ketchup", "peanut butter", "chocolate", "cocoa",
		"nut", "almond", "walnut", "pecan", "cashew", "seed", "raisin", "date"}, parse.CategoryPantry},
	{[]string{"frozen"}, parse.CategoryFrozen},
	{[]string{"chicken", "beef", "pork", "bacon", "sausage", "turkey", "lamb", "ham",
		"steak", "ground meat", "veal", "chorizo", "prosciutto", "duck"}, parse.CategoryMeat},
	{[]string{"salmon", "shrimp", "tuna", "cod", "tilapia", "halibut", "crab", "lobster",
		"scallop", "mussel", "clam", "anchovy", "sardine", "fish"}, parse.CategorySeafood},
	{[]string{"milk", "cheese", "butter", "cream", "yogurt", "egg", "parmesan", "mozzarella",
		"cheddar", "feta", "ricotta", "mascarpone", "buttermilk"}, parse.CategoryDairy},
	{[]string{"bread", "bun", "roll", "tortilla", "bagel", "pita", "baguette", "croissant",
		"breadcrumb"}, parse.CategoryBakery},
	{[]string{"juice", "wine", "beer", "rum", "whiskey", "vodka", "brandy", "soda",
		"coffee", "tea", "cider"}, parse.CategoryBeverage},
	{[]string{"tomato", "onion", "garlic", "lettuce", "apple", "lemon", "lime", "orange",
		"carrot", "celery", "potato", "spinach", "kale", "basil", "parsley", "cilantro",
		"mint", "thyme", "rosemary", "dill", "mushroom", "zucchini", "eggplant", "avocado",
		"green onion", "shallot", "leek", "ginger", "cucumber", "berry", "strawberry",
		"blueberry", "banana", "mango", "peach", "pear", "grape", "melon", "pumpkin",
		"squash", "broccoli", "cauliflower", "cabbage", "asparagus", "pea", "corn",
		"bell pepper", "jalapeno", "jalapeño", "chile", "chili", "radish", "beet",
		"arugula", "watercress", "herb", "lemongrass", "cherry"}, parse.CategoryProduce},
}

// singularExceptions are words the suffix-stripping rule would mangle.
var singularExceptions = map[string]string{
	"molasses":  "molasses",
	"couscous":  "couscous",
	"hummus":    "hummus",
	"asparagus": "asparagus",
	"swiss":     "swiss",
	"leaves":    "leaf",
	"halves":    "half",
	"tomatoes":  "tomato",
	"potatoes":  "potato",
	"anchovies": "anchovy",
	"berries":   "berry",
	"cherries":  "cherry",
}

// Singularize reduces one lowercase word to singular with a lightweight
// suffix rule. It is intentionally approximate; the exceptions table covers
// the cases the rule gets wrong in practice.
func Singularize(word string) string {
	if s, ok := singularExceptions[word]; ok {
		return s
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "oes") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ses") || strings.HasSuffix(word, "xes") ||
		strings.HasSuffix(word, "zes") || strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us"):
		return word
	case strings.HasSuffix(word, "s") && len(word) > 2:
		return word[:len(word)-1]
	}
	return word
}

// CanonicalItem reduces an item phrase to its canonical base: lowercase,
// per-word singularized, synonym-folded. Input is expected to already be
// stripped of brand/qualifier/preparation text.
func CanonicalItem(phrase string) string {
	words := strings.Fields(strings.ToLower(phrase))
	for i, w := range words {
		words[i] = Singularize(w)
	}
	item := strings.Join(words, " ")
	if syn, ok := itemSynonyms[item]; ok {
		return syn
	}
	return item
}

// Synonym resolves an already-canonical item through the synonym table;
// callers use it to test step text against both spellings of an item.
func Synonym(item string) (string, bool) {
	syn, ok := itemSynonyms[item]
	return syn, ok
}

// synonymAliases is the reverse of itemSynonyms, built once at init:
// canonical item -> the variant spellings that fold into it.
var synonymAliases = func() map[string][]string {
	rev := make(map[string][]string, len(itemSynonyms))
	for alias, canonical := range itemSynonyms {
		rev[canonical] = append(rev[canonical], alias)
	}
	return rev
}()

// AliasesFor returns the variant spellings that canonicalize to item.
// Step text may use any of them when referencing an ingredient.
func AliasesFor(item string) []string {
	return synonymAliases[item]
}

// knownFoodWords collects every word that appears in the food vocabularies
// (category keywords, synonyms, qualifiers, preparation forms). The brand
// heuristic uses it to avoid mistaking a capitalized food word for a brand.
var knownFoodWords = func() map[string]bool {
	words := make(map[string]bool, 512)
	addPhrase := func(p string) {
		for _, w := range strings.Fields(p) {
			words[w] = true
		}
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			addPhrase(kw)
		}
	}
	for alias, canonical := range itemSynonyms {
		addPhrase(alias)
		addPhrase(canonical)
	}
	for _, q := range qualifiers {
		addPhrase(q)
	}
	for form := range preparationForms {
		words[form] = true
	}
	return words
}()

// KnownFoodWord reports whether a lowercase word belongs to the food
// vocabularies.
func KnownFoodWord(word string) bool {
	return knownFoodWords[strings.ToLower(word)]
}

// Categorize assigns a coarse category to a canonical item using the
// ordered keyword rules, defaulting to pantry.
func Categorize(item string) parse.Category {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if containsWord(item, kw) {
				return rule.category
			}
		}
	}
	return parse.CategoryPantry
}

// containsWord reports whether phrase contains kw on word boundaries.
func containsWord(phrase, kw string) bool {
	idx := 0
	for {
		i := strings.Index(phrase[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		startOK := start == 0 || phrase[start-1] == ' '
		endOK := end == len(phrase) || phrase[end] == ' '
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(phrase) {
			return false
		}
	}
}
