// Package instruction turns free-text recipe directions into annotated
// steps: segmentation into individual steps, then per-step extraction of
// actions, tools, temperatures, durations, speeds, doneness cues and
// ingredient back-references.
package instruction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grocerly/recipetext/internal/domain/parse"
	"github.com/grocerly/recipetext/internal/parser/lexicon"
)

var (
	reOrdinal     = regexp.MustCompile(`(?i)^\s*(?:step\s+)?\d+\s*[.):]\s*`)
	reTemperature = regexp.MustCompile(`(\d{2,3})\s*°?\s*([FC])\b`)
	reDuration    = regexp.MustCompile(`(?i)\b(?:about\s+|approximately\s+|around\s+)?(\d+(?:\.\d+)?)(?:\s*(?:-|–|to)\s*(\d+(?:\.\d+)?))?\s*(seconds?|secs?|minutes?|mins?|hours?|hrs?)\b`)
	reMakeThe     = regexp.MustCompile(`(?i)\bmakes?\s+the\s+([^,.;]+)`)
	reFormsA      = regexp.MustCompile(`(?i)\bforms?\s+a\s+[^,.;]+`)
	reParenNote   = regexp.MustCompile(`\(([^)]*)\)`)
)

// Parse annotates instruction lines into ordered steps. A single input
// line is treated as a block of prose and segmented at sentence
// boundaries; multiple lines are taken as an already-split list with
// any leading ordinal markers removed. known supplies the parsed
// ingredient records that step text is matched back against.
func Parse(lines []string, section string, known []parse.Ingredient) []parse.Step {
	var raws []string
	if len(lines) == 1 {
		raws = Segment(lines[0])
	} else {
		for _, line := range lines {
			line = strings.TrimSpace(reOrdinal.ReplaceAllString(line, ""))
			if line == "" {
				continue
			}
			raws = append(raws, line)
		}
	}

	items := knownItems(known)
	steps := make([]parse.Step, 0, len(raws))
	for i, raw := range raws {
		steps = append(steps, annotate(raw, i+1, section, items))
	}
	return steps
}

// Segment splits a prose block into step sentences. Boundaries are a
// period followed by whitespace and a capital letter, or a semicolon.
// Leading ordinal markers on the block are stripped like list lines.
func Segment(block string) []string {
	block = strings.TrimSpace(reOrdinal.ReplaceAllString(block, ""))
	if block == "" {
		return nil
	}

	var out []string
	start := 0
	for i := 0; i < len(block); i++ {
		switch block[i] {
		case ';':
			if s := strings.TrimSpace(block[start:i]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		case '.':
			// Sentence boundary only when a capital follows; keeps
			// "375 deg. oven" style abbreviations intact.
			j := i + 1
			for j < len(block) && (block[j] == ' ' || block[j] == '\t') {
				j++
			}
			if j > i+1 && j < len(block) && block[j] >= 'A' && block[j] <= 'Z' {
				if s := strings.TrimSpace(block[start : i+1]); s != "" {
					out = append(out, s)
				}
				start = j
				i = j - 1
			}
		}
	}
	if s := strings.TrimSpace(block[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func annotate(raw string, number int, section string, items []knownItem) parse.Step {
	lower := strings.ToLower(raw)
	step := parse.Step{
		Raw:     raw,
		Number:  number,
		Section: section,
	}

	step.Actions = extractActions(lower)
	step.Tools = matchPhrases(lower, lexicon.Tools())
	step.Temperatures = extractTemperatures(raw)
	step.Times = extractDurations(lower)
	step.Speeds = matchPhrases(lower, lexicon.SpeedDescriptors())
	step.Doneness = extractDoneness(lower)
	step.Concurrent = detectConcurrency(lower)
	step.Yields = extractYields(raw)
	step.Ingredients = matchIngredients(lower, items)
	step.Notes = extractParenNotes(raw)
	return step
}

func extractActions(lower string) []string {
	var actions []string
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		if lemma, ok := lexicon.ActionLemma(word); ok {
			actions = appendUnique(actions, lemma)
		}
	}
	return actions
}

// matchPhrases finds whole-word occurrences of the given phrases,
// suppressing any candidate that overlaps an earlier match so compound
// phrases ("medium-high", "cast iron skillet") win over their parts.
func matchPhrases(lower string, phrases []string) []string {
	type span struct{ start, end int }
	var taken []span
	var out []string

	for _, phrase := range phrases {
		from := 0
		for {
			idx := strings.Index(lower[from:], phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(phrase)
			from = end
			if !boundedAt(lower, start, end) {
				continue
			}
			overlaps := false
			for _, s := range taken {
				if start < s.end && end > s.start {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}
			taken = append(taken, span{start, end})
			out = appendUnique(out, phrase)
		}
	}
	return out
}

func extractTemperatures(raw string) []parse.Temperature {
	var temps []parse.Temperature
	for _, m := range reTemperature.FindAllStringSubmatch(raw, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := parse.TemperatureUnitCelsius
		if m[2] == "F" {
			unit = parse.TemperatureUnitFahrenheit
		}
		temps = append(temps, parse.Temperature{Value: value, Unit: unit})
	}
	return temps
}

func extractDurations(lower string) []parse.Duration {
	var times []parse.Duration
	for _, m := range reDuration.FindAllStringSubmatch(lower, -1) {
		min, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		max := min
		if m[2] != "" {
			if v, err := strconv.ParseFloat(m[2], 64); err == nil {
				max = v
			}
		}
		times = append(times, parse.Duration{Min: min, Max: max, Unit: durationUnit(m[3])})
	}
	return times
}

func durationUnit(token string) parse.TimeUnit {
	switch {
	case strings.HasPrefix(token, "sec"):
		return parse.TimeUnitSecond
	case strings.HasPrefix(token, "hour"), strings.HasPrefix(token, "hr"):
		return parse.TimeUnitHour
	default:
		return parse.TimeUnitMinute
	}
}

// extractDoneness collects "until ..." clauses verbatim and "to ..."
// clauses only when the target is a known doneness cue, so "bring to a
// boil" registers while "to 375°F" does not.
func extractDoneness(lower string) []string {
	var cues []string
	for _, m := range clausesAfter(lower, "until ") {
		cues = appendUnique(cues, "until "+m)
	}
	for _, m := range clausesAfter(lower, "to ") {
		if cue, ok := lexicon.DonenessCue(m); ok {
			cues = appendUnique(cues, "to "+cue)
		}
	}
	return cues
}

// clausesAfter returns the text following each whole-word occurrence of
// marker, cut at the next clause boundary and trimmed of punctuation.
func clausesAfter(lower, marker string) []string {
	var out []string
	from := 0
	for {
		idx := strings.Index(lower[from:], marker)
		if idx < 0 {
			break
		}
		start := from + idx
		if start > 0 && isWordByte(lower[start-1]) {
			from = start + len(marker)
			continue
		}
		rest := lower[start+len(marker):]
		end := strings.IndexAny(rest, ",.;()")
		if end < 0 {
			end = len(rest)
		}
		if clause := strings.TrimSpace(rest[:end]); clause != "" {
			out = append(out, clause)
		}
		from = start + len(marker)
	}
	return out
}

func detectConcurrency(lower string) bool {
	for _, marker := range lexicon.ConcurrencyMarkers() {
		if containsWord(lower, marker) {
			return true
		}
	}
	return false
}

func extractYields(raw string) []string {
	var yields []string
	for _, m := range reMakeThe.FindAllStringSubmatch(raw, -1) {
		yields = appendUnique(yields, strings.ToLower(strings.TrimSpace(m[1])))
	}
	for _, m := range reFormsA.FindAllString(raw, -1) {
		yields = appendUnique(yields, strings.ToLower(strings.TrimSpace(m)))
	}
	return yields
}

type knownItem struct {
	canonical string
	spellings []string
}

func knownItems(known []parse.Ingredient) []knownItem {
	seen := make(map[string]bool, len(known))
	items := make([]knownItem, 0, len(known))
	for _, ing := range known {
		if ing.Item == "" || seen[ing.Item] {
			continue
		}
		seen[ing.Item] = true
		spellings := append([]string{ing.Item}, lexicon.AliasesFor(ing.Item)...)
		items = append(items, knownItem{canonical: ing.Item, spellings: spellings})
	}
	return items
}

// matchIngredients reports which known ingredients the step text
// references, by canonical name or any synonym spelling, allowing a
// plural suffix on the final word.
func matchIngredients(lower string, items []knownItem) []string {
	var refs []string
	for _, item := range items {
		for _, spelling := range item.spellings {
			if containsWordPlural(lower, spelling) {
				refs = appendUnique(refs, item.canonical)
				break
			}
		}
	}
	return refs
}

func extractParenNotes(raw string) []string {
	var notes []string
	for _, m := range reParenNote.FindAllStringSubmatch(raw, -1) {
		inner := strings.TrimSpace(m[1])
		if inner == "" {
			continue
		}
		// Metric or imperial restatements stay as temperatures, not notes.
		if reTemperature.MatchString(inner) {
			continue
		}
		notes = appendUnique(notes, strings.ToLower(inner))
	}
	return notes
}

// containsWordPlural is a whole-word search that also accepts an "s" or
// "es" suffix on the matched phrase.
func containsWordPlural(text, phrase string) bool {
	from := 0
	for {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(phrase)
		from = end
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		rest := text[end:]
		switch {
		case rest == "" || !isWordByte(rest[0]):
			return true
		case strings.HasPrefix(rest, "es") && (len(rest) == 2 || !isWordByte(rest[2])):
			return true
		case rest[0] == 's' && (len(rest) == 1 || !isWordByte(rest[1])):
			return true
		}
	}
}

func containsWord(text, phrase string) bool {
	from := 0
	for {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(phrase)
		if boundedAt(text, start, end) {
			return true
		}
		from = end
	}
}

func boundedAt(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
