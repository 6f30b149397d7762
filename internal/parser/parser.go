// Package parser is the engine facade: it orchestrates the section
// splitter, the ingredient line parser and the instruction step parser
// into one deterministic, total ParseRecipe call. The engine never
// returns errors; malformed input degrades to sparsely populated records.
package parser

import (
	"strings"

	"github.com/grocerly/recipetext/internal/domain/parse"
	"github.com/grocerly/recipetext/internal/parser/ingredient"
	"github.com/grocerly/recipetext/internal/parser/instruction"
	"github.com/grocerly/recipetext/internal/parser/section"
)

// Input is the raw recipe text handed to the engine. Ingredients and
// Instructions accept pre-split lines; a single element containing
// newlines or pipe separators is split first, so both multi-line blocks
// and "2 cups flour|3 large eggs" strings parse the same way.
type Input struct {
	Title        string   `json:"title,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// ParseRecipe parses a full recipe. Ingredient lines are grouped into
// sections, each line parsed into zero or more records, and instruction
// text segmented into annotated steps that reference the parsed
// ingredients. The call is pure: same input, same output, no shared state.
func ParseRecipe(input Input) *parse.Recipe {
	recipe := &parse.Recipe{Title: strings.TrimSpace(input.Title)}

	blocks := section.Split(splitLines(input.Ingredients))
	for _, block := range blocks {
		if block.Name != "" {
			recipe.Sections = append(recipe.Sections, block.Name)
		}
		for _, line := range block.Lines {
			recipe.Ingredients = append(recipe.Ingredients, ingredient.ParseLine(line, block.Name)...)
		}
	}

	recipe.Steps = instruction.Parse(splitLines(input.Instructions), "", recipe.Ingredients)
	return recipe
}

// ParseIngredientLine parses one ingredient line outside a recipe
// context, for callers that hold fragments rather than whole recipes.
func ParseIngredientLine(line string) []parse.Ingredient {
	return ingredient.ParseLine(line, "")
}

// ParseInstructions parses instruction text with no ingredient context;
// steps carry empty ingredient references.
func ParseInstructions(lines []string) []parse.Step {
	return instruction.Parse(splitLines(lines), "", nil)
}

// splitLines normalizes input lines: elements containing newlines or pipe
// separators are expanded in place, blanks dropped.
func splitLines(in []string) []string {
	var out []string
	for _, element := range in {
		for _, line := range strings.FieldsFunc(element, func(r rune) bool {
			return r == '\n' || r == '\r' || r == '|'
		}) {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
