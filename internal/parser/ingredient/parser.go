// Package ingredient parses one free-text ingredient line into structured
// records. The parser is a strictly sequential pipeline: each stage consumes
// part of the remaining text and narrows it for the next stage, with no
// backtracking. Every stage degrades to "no match" on malformed input, so
// parsing is total.
package ingredient

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/grocerly/recipetext/internal/domain/parse"
	"github.com/grocerly/recipetext/internal/parser/lexicon"
	"github.com/grocerly/recipetext/internal/parser/quantity"
)

var (
	reBullet    = regexp.MustCompile(`^\s*[-*•·]+\s*`)
	reDash      = strings.NewReplacer("–", "-", "—", "-")
	reContainer = regexp.MustCompile(`\(\s*(?:about\s+)?(\d+(?:\.\d+)?(?:\s+\d+/\d+)?|\d+/\d+)\s*[- ]?\s*([A-Za-z][A-Za-z. ]*?)\.?\s*(?:each)?\s*\)`)
	reParen     = regexp.MustCompile(`\([^)]*\)`)
	rePlusMore  = regexp.MustCompile(`(?i)[,;]?\s*\bplus more\b[^,;]*$`)
	reSpaces    = regexp.MustCompile(`\s{2,}`)
)

// ParseLine parses a single ingredient line into zero or more records.
// Zero records means the line had no item text left after stripping; one is
// the common case; compound lines ("salt and pepper") expand to more. The
// section name is carried through verbatim.
func ParseLine(raw, section string) []parse.Ingredient {
	trimmedRaw := strings.TrimSpace(raw)
	if trimmedRaw == "" {
		return nil
	}

	// Stage 1: strip list decoration, normalize dashes and fraction glyphs.
	line := reBullet.ReplaceAllString(trimmedRaw, "")
	line = reDash.Replace(line)
	line = lexicon.ExpandFractionGlyphs(line)
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	// Stage 11 is checked up front against the cleaned line: expansion
	// rules replace the whole single-item parse when one matches.
	for _, rule := range expansionRules {
		if rule.match(line) {
			return rule.expand(trimmedRaw, section, line)
		}
	}

	ing := parse.Ingredient{Raw: trimmedRaw, Section: section}

	// Stage 2: lift a parenthetical container size out of the line.
	var pendingSize *parse.ContainerSize
	line, pendingSize = extractContainerSize(line)

	// Stage 3: quantity and unit off the head of the line.
	line = extractQuantity(line, &ing, pendingSize)

	// Stage 4: trailing note clauses.
	line = extractNotes(line, &ing)

	// Stage 5: descriptor clauses after top-level commas.
	main, descriptors := splitTopLevelCommas(line)
	scanDescriptors(descriptors, &ing)

	// Stage 6: "X or Y" alternatives.
	main = extractAlternative(main, &ing)

	// Stage 7: leading brand.
	main = extractBrand(main, &ing)

	// Stage 8: bare-countable noun as implicit unit.
	main = resolveBareCountable(main, &ing)

	// Stages 9-10: canonical item and category.
	item := canonicalize(main, &ing)
	if item == "" {
		return nil
	}
	ing.Item = item
	ing.Category = lexicon.Categorize(item)

	return []parse.Ingredient{ing}
}

// extractContainerSize removes the first parenthetical whose content reads
// as "<number> <unit>" and returns the size. Parentheticals that do not
// resolve to a known unit are left in place for later stages.
func extractContainerSize(line string) (string, *parse.ContainerSize) {
	loc := reContainer.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, nil
	}
	m := reContainer.FindStringSubmatch(line)
	unit, ok := lexicon.CanonicalUnit(m[2])
	if !ok {
		return line, nil
	}
	value, ok := parseNumeric(m[1])
	if !ok {
		return line, nil
	}
	cleaned := strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
	cleaned = reSpaces.ReplaceAllString(cleaned, " ")
	return cleaned, &parse.ContainerSize{Value: value, Unit: unit}
}

// extractQuantity runs the quantity/unit extractor on the line head. A
// container word in unit position ("2 cans ...") folds the count into the
// container instead of the measured quantity. Estimate phrases ("a pinch
// of") are checked first so they resolve as vague quantities rather than
// as the count 1 with a pinch unit.
func extractQuantity(line string, ing *parse.Ingredient, size *parse.ContainerSize) string {
	if phrase, consumed, ok := lexicon.MatchEstimate(line); ok {
		ing.Quantity = &parse.Quantity{Text: phrase}
		ing.Estimated = true
		if size != nil {
			ing.Container = &parse.Container{Size: size}
		}
		return strings.TrimSpace(line[consumed:])
	}

	res := quantity.Extract(line)
	rest := strings.TrimSpace(line[res.Consumed:])

	if res.Unit != "" && lexicon.IsContainerUnit(res.Unit) {
		ing.Container = &parse.Container{
			Count: int(math.Round(res.Quantity.Min)),
			Kind:  parse.ContainerKind(res.Unit),
			Size:  size,
		}
		return rest
	}

	if !res.Quantity.IsZero() {
		q := res.Quantity
		ing.Quantity = &q
		ing.Unit = res.Unit
	}
	// A size with no container word still records the packaging.
	if size != nil {
		if ing.Container == nil {
			ing.Container = &parse.Container{}
		}
		ing.Container.Size = size
	}
	if res.Consumed == 0 {
		return strings.TrimSpace(line)
	}
	return rest
}

// extractNotes strips trailing clauses from the fixed note vocabulary,
// routing "to taste" to the flag and the rest to notes. "plus more ..."
// clauses keep their free-text tail.
func extractNotes(line string, ing *parse.Ingredient) string {
	if m := rePlusMore.FindString(line); m != "" {
		note := strings.TrimSpace(strings.TrimLeft(m, ",; "))
		ing.Notes = append(ing.Notes, strings.ToLower(note))
		line = strings.TrimSpace(strings.TrimSuffix(line, m))
	}

	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(line)
		for _, note := range lexicon.NoteVocabulary() {
			for _, suffix := range []string{", " + note, " " + note, "(" + note + ")", ", (" + note + ")"} {
				if !strings.HasSuffix(lower, suffix) {
					continue
				}
				line = strings.TrimSpace(line[:len(line)-len(suffix)])
				line = strings.TrimSuffix(line, ",")
				if note == "to taste" {
					ing.ToTaste = true
				} else {
					ing.Notes = append(ing.Notes, note)
				}
				changed = true
				break
			}
			if changed {
				break
			}
		}
	}
	return line
}

// splitTopLevelCommas splits on commas outside parentheses into the main
// clause and trailing descriptor clauses.
func splitTopLevelCommas(line string) (string, []string) {
	var parts []string
	depth, start := 0, 0
	for i, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(line[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(line[start:]))
	main := parts[0]
	var descriptors []string
	for _, p := range parts[1:] {
		if p != "" {
			descriptors = append(descriptors, p)
		}
	}
	return main, descriptors
}

// scanDescriptors matches descriptor clauses against the preparation-form
// and qualifier vocabularies. Clauses that match neither are preserved as
// notes so no information is silently lost.
func scanDescriptors(descriptors []string, ing *parse.Ingredient) {
	for _, clause := range descriptors {
		matched := false
		lower := strings.ToLower(clause)
		for _, word := range strings.Fields(lower) {
			if lexicon.IsPreparationForm(word) {
				ing.Forms = appendUnique(ing.Forms, word)
				matched = true
			}
		}
		for _, q := range lexicon.Qualifiers() {
			if containsWord(lower, q) {
				ing.Qualifiers = appendUnique(ing.Qualifiers, q)
				matched = true
			}
		}
		if !matched {
			ing.Notes = append(ing.Notes, lower)
		}
	}
}

// extractAlternative splits "X or Y", keeping the left-hand item and
// storing the canonicalized right-hand side as an alternative.
func extractAlternative(main string, ing *parse.Ingredient) string {
	left, right, found := cutWord(main, "or")
	if !found {
		return main
	}
	alt := lexicon.CanonicalItem(strings.TrimSpace(right))
	if alt != "" {
		ing.Alternatives = append(ing.Alternatives, alt)
	}
	return strings.TrimSpace(left)
}

// extractBrand peels consecutive capitalized tokens off the head of the
// clause. The heuristic only fires when a lowercase token follows and the
// capitalized tokens are not food vocabulary words, so "Red pepper flakes"
// keeps its full item text while "Heinz ketchup" yields a brand.
func extractBrand(main string, ing *parse.Ingredient) string {
	tokens := strings.Fields(main)
	n := 0
	for _, tok := range tokens {
		r := []rune(tok)[0]
		if !unicode.IsUpper(r) || lexicon.KnownFoodWord(tok) {
			break
		}
		n++
	}
	if n == 0 || n == len(tokens) {
		return main
	}
	ing.Brand = strings.Join(tokens[:n], " ")
	return strings.Join(tokens[n:], " ")
}

// resolveBareCountable promotes a known countable noun to unit position
// when no unit was found ("2 cloves garlic", "3 eggs"). When the noun is
// the whole remaining phrase it stays as the item as well.
func resolveBareCountable(main string, ing *parse.Ingredient) string {
	if ing.Unit != "" || ing.Quantity == nil {
		return main
	}
	first, rest, _ := strings.Cut(main, " ")
	unit, ok := lexicon.BareCountable(first)
	if !ok {
		return main
	}
	ing.Unit = unit
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return first
	}
	return rest
}

// canonicalize reduces the remaining phrase to the canonical item: drops a
// leading "of", strips residual parentheticals, lifts leading qualifiers
// onto the record, then singularizes and folds synonyms.
func canonicalize(main string, ing *parse.Ingredient) string {
	main = strings.TrimSpace(main)

	lower := strings.ToLower(main)
	lower = strings.TrimPrefix(lower, "of ")
	lower = reParen.ReplaceAllString(lower, " ")
	lower = reSpaces.ReplaceAllString(lower, " ")
	lower = strings.TrimSpace(lower)

	for changed := true; changed; {
		changed = false
		for _, q := range lexicon.Qualifiers() {
			if strings.HasPrefix(lower, q+" ") {
				ing.Qualifiers = appendUnique(ing.Qualifiers, q)
				lower = strings.TrimSpace(lower[len(q):])
				changed = true
			}
		}
	}

	return lexicon.CanonicalItem(lower)
}

// cutWord splits s around the first occurrence of word on word boundaries,
// case-insensitive.
func cutWord(s, word string) (left, right string, found bool) {
	lower := strings.ToLower(s)
	target := " " + word + " "
	if i := strings.Index(lower, target); i >= 0 {
		return s[:i], s[i+len(target):], true
	}
	return s, "", false
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
		startOK := start == 0 || !isWordByte(phrase[start-1])
		endOK := end == len(phrase) || !isWordByte(phrase[end])
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(phrase) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// parseNumeric evaluates a plain, fractional, or mixed numeric token.
func parseNumeric(tok string) (float64, bool) {
	res := quantity.Extract(tok)
	if res.Quantity.IsZero() {
		return 0, false
	}
	return res.Quantity.Min, true
}
