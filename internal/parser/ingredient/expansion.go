package ingredient

import (
	"regexp"

	"github.com/grocerly/recipetext/internal/domain/parse"
)

// expansionRule is an optional compound-line rule: a pure predicate plus a
// transform. Rules are evaluated in order against the cleaned line before
// the single-item pipeline runs; the first match replaces the whole parse.
// New compound shapes slot in here without touching the core pipeline.
type expansionRule struct {
	match  func(line string) bool
	expand func(raw, section, line string) []parse.Ingredient
}

var reSaltAndPepper = regexp.MustCompile(`(?i)^(?:kosher\s+|sea\s+)?salt\s+(?:and|&)\s+(?:black\s+|ground\s+)?pepper(?:\s*,?\s+to\s+taste)?$`)

var expansionRules = []expansionRule{
	{
		match: reSaltAndPepper.MatchString,
		expand: func(raw, section, _ string) []parse.Ingredient {
			return []parse.Ingredient{
				{
					Raw:      raw,
					Section:  section,
					Item:     "salt",
					ToTaste:  true,
					Category: parse.CategoryPantry,
				},
				{
					Raw:      raw,
					Section:  section,
					Item:     "black pepper",
					ToTaste:  true,
					Category: parse.CategoryPantry,
				},
			}
		},
	},
}
