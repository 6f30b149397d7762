// Package section groups flat ingredient-line lists into named sub-lists
// using "For the ...:" style headers.
package section

import (
	"regexp"
	"strings"
)

// Block is one contiguous run of lines belonging to a (possibly unnamed)
// section, in input order.
type Block struct {
	Name  string
	Lines []string
}

// reHeader matches a section header line: "For <anything>" with an optional
// trailing colon, case-insensitive. The captured group is the section name
// without the "the" article.
var reHeader = regexp.MustCompile(`(?i)^for\s+(?:the\s+)?(.+?):?\s*$`)

// Split assigns every non-blank line to exactly one block. A header line
// opens a new named block and is not itself emitted as content; lines
// before the first header form an unnamed block. Blank lines are dropped.
func Split(lines []string) []Block {
	var blocks []Block
	current := -1

	appendLine := func(line string) {
		if current < 0 {
			blocks = append(blocks, Block{})
			current = 0
		}
		blocks[current].Lines = append(blocks[current].Lines, line)
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := reHeader.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, Block{Name: strings.TrimSpace(m[1])})
			current = len(blocks) - 1
			continue
		}
		appendLine(line)
	}

	// Drop a named block that ended up empty (header at end of input).
	out := blocks[:0]
	for _, b := range blocks {
		if len(b.Lines) > 0 {
			out = append(out, b)
		}
	}
	return out
}
