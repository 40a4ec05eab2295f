package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Problem describes one authoring mistake found inside a recipe block
type Problem struct {
	// Block is the 1-based index of the block within the note text
	Block int
	// Line is the offending line, trimmed; empty for block-level problems
	Line string
	// Message is the human-readable diagnosis
	Message string
}

// knownKeys lists every grammar field key, used for typo suggestions
var knownKeys = []string{
	keyResult,
	keyMaterial1,
	keyMaterial2,
	keyDescription,
	keyRequirement,
	keyCost,
}

// Diagnose inspects every recipe block in the note text and reports why the
// blocks the parser would skip fail to parse. Blocks that parse cleanly
// produce no problems. The runtime catalog scan never calls this; it exists
// for the lint tooling, which surfaces to authors what ParseAll absorbs
// silently.
func Diagnose(text string) []Problem {
	var problems []Problem

	matches := blockRegex.FindAllStringSubmatch(text, -1)
	for i, match := range matches {
		if _, ok := parseBlock(match[1]); ok {
			continue
		}
		problems = append(problems, diagnoseBlock(i+1, match[1])...)
	}

	return problems
}

// diagnoseBlock explains why one block body fails to parse
func diagnoseBlock(blockIndex int, body string) []Problem {
	lines := splitLines(body)

	var problems []Problem
	seen := make(map[string]bool)

	for _, line := range lines {
		key, rest, found := strings.Cut(line, ":")
		if !found {
			problems = append(problems, Problem{
				Block:   blockIndex,
				Line:    line,
				Message: "not a field line (expected \"key: value\")",
			})
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if suggestion, ok := matchKey(key); !ok {
			problems = append(problems, Problem{
				Block:   blockIndex,
				Line:    line,
				Message: fmt.Sprintf("unknown field %q", key),
			})
			continue
		} else if suggestion != key {
			problems = append(problems, Problem{
				Block:   blockIndex,
				Line:    line,
				Message: fmt.Sprintf("unknown field %q (did you mean %q?)", key, suggestion),
			})
			seen[suggestion] = true
			continue
		}

		seen[key] = true
		if problem, bad := checkFieldValue(key, rest); bad {
			problems = append(problems, Problem{
				Block:   blockIndex,
				Line:    line,
				Message: problem,
			})
		}
	}

	for _, required := range []string{keyResult, keyMaterial1, keyMaterial2} {
		if !seen[required] {
			problems = append(problems, Problem{
				Block:   blockIndex,
				Message: fmt.Sprintf("missing required field %q", required),
			})
		}
	}

	if len(problems) == 0 {
		// Fields are individually fine, so the order must be wrong
		problems = append(problems, Problem{
			Block:   blockIndex,
			Message: "fields are out of order (expected result, material1, material2, description, requirement, cost)",
		})
	}

	return problems
}

// matchKey resolves a line key against the grammar keys, tolerating small
// typos. Returns the matched or suggested key and whether any key is close
// enough to name.
func matchKey(key string) (string, bool) {
	for _, known := range knownKeys {
		if key == known {
			return known, true
		}
	}

	best := ""
	bestDistance := 0
	for _, known := range knownKeys {
		d := levenshtein.ComputeDistance(key, known)
		if d <= suggestionLimit(known) && (best == "" || d < bestDistance) {
			best = known
			bestDistance = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// suggestionLimit scales the tolerated edit distance with the key length,
// so short keys like "cost" do not attract unrelated words
func suggestionLimit(key string) int {
	if len(key) <= 4 {
		return 1
	}
	return 2
}

// checkFieldValue validates the value part of a correctly-keyed line
func checkFieldValue(key, value string) (string, bool) {
	line := key + ":" + value
	switch key {
	case keyResult:
		m := resultLineRegex.FindStringSubmatch(line)
		if m == nil {
			return "result must be \"result: <kind> <id>\"", true
		}
		if _, ok := parseRef(m[1], m[2]); !ok {
			return fmt.Sprintf("unknown entity kind %q or bad id", m[1]), true
		}
	case keyMaterial1, keyMaterial2:
		m := materialLineRegex.FindStringSubmatch(line)
		if m == nil {
			return fmt.Sprintf("%s must be \"%s: <kind> <id> x<quantity>\"", key, key), true
		}
		if _, ok := parseRef(m[2], m[3]); !ok {
			return fmt.Sprintf("unknown entity kind %q or bad id", m[2]), true
		}
		if qty, err := strconv.Atoi(m[4]); err != nil || qty < 1 {
			return "material quantity must be at least 1", true
		}
	case keyRequirement:
		m := requirementLineRegex.FindStringSubmatch(line)
		if m == nil {
			return "requirement must be \"requirement: <kind> <id>\"", true
		}
		if _, ok := parseRef(m[1], m[2]); !ok {
			return fmt.Sprintf("unknown entity kind %q or bad id", m[1]), true
		}
	case keyCost:
		if !costLineRegex.MatchString(line) {
			return "cost must be a non-negative integer", true
		}
	}
	return "", false
}
