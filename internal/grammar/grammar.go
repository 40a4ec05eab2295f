// Package grammar implements the recipe-block annotation grammar: locating
// delimited blocks inside free-form note text, parsing them into Recipe
// values, and rendering recipes back to the canonical block layout.
//
// Parsing is best-effort. Note text is author-supplied and typos are
// expected; a block that does not match the grammar yields no recipe and no
// error, so a single bad annotation can never take down a catalog scan.
package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/forgebound/crafting-api/internal/entities"
)

// Grammar field keys, in the fixed order they must appear within a block
const (
	keyResult      = "result"
	keyMaterial1   = "material1"
	keyMaterial2   = "material2"
	keyDescription = "description"
	keyRequirement = "requirement"
	keyCost        = "cost"
)

var (
	// Matches one delimited recipe block; submatch 1 is the block body
	blockRegex = regexp.MustCompile(`(?is)<recipe>\s*(.*?)\s*</recipe>`)

	// Field line patterns, matched against whole trimmed lines
	resultLineRegex      = regexp.MustCompile(`(?i)^result:\s*([a-z]+)\s+(\d+)$`)
	materialLineRegex    = regexp.MustCompile(`(?i)^material([12]):\s*([a-z]+)\s+(\d+)\s+x(\d+)$`)
	descriptionLineRegex = regexp.MustCompile(`(?i)^description:\s*(.*)$`)
	requirementLineRegex = regexp.MustCompile(`(?i)^requirement:\s*([a-z]+)\s+(\d+)$`)
	costLineRegex        = regexp.MustCompile(`(?i)^cost:\s*(\d+)$`)
)

// ParseAll extracts every well-formed recipe block from the note text, in
// order of appearance. Malformed blocks are skipped silently. A nil slice
// means the text carries no (valid) recipes.
func ParseAll(text string) []entities.Recipe {
	if text == "" {
		return nil
	}

	var recipes []entities.Recipe
	for _, match := range blockRegex.FindAllStringSubmatch(text, -1) {
		recipe, ok := parseBlock(match[1])
		if !ok {
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes
}

// ParseFirst extracts only the first recipe block from the note text. This
// is the legacy single-recipe behavior; new callers should use ParseAll,
// which handles annotation bodies carrying several recipes.
func ParseFirst(text string) (entities.Recipe, bool) {
	if text == "" {
		return entities.Recipe{}, false
	}

	match := blockRegex.FindStringSubmatch(text)
	if match == nil {
		return entities.Recipe{}, false
	}
	return parseBlock(match[1])
}

// parseBlock parses the body of one delimited block. The three required
// lines (result, material1, material2) come first; the optional lines
// (description, requirement, cost) follow in that fixed order. Any line
// that does not fit the next expected field fails the whole block.
func parseBlock(body string) (entities.Recipe, bool) {
	lines := splitLines(body)
	if len(lines) < 3 {
		return entities.Recipe{}, false
	}

	result, ok := parseResultLine(lines[0])
	if !ok {
		return entities.Recipe{}, false
	}

	first, ok := parseMaterialLine(lines[1], 1)
	if !ok {
		return entities.Recipe{}, false
	}
	second, ok := parseMaterialLine(lines[2], 2)
	if !ok {
		return entities.Recipe{}, false
	}

	recipe := entities.Recipe{
		Result:    result,
		Materials: []entities.Material{first, second},
	}

	// Optional fields keep the declared order: each remaining line must
	// match a field at or after the cursor position.
	next := 0
	for _, line := range lines[3:] {
		switch {
		case next <= 0 && descriptionLineRegex.MatchString(line):
			recipe.Description = strings.TrimSpace(descriptionLineRegex.FindStringSubmatch(line)[1])
			next = 1
		case next <= 1 && requirementLineRegex.MatchString(line):
			m := requirementLineRegex.FindStringSubmatch(line)
			ref, ok := parseRef(m[1], m[2])
			if !ok {
				return entities.Recipe{}, false
			}
			recipe.Requirement = &ref
			next = 2
		case next <= 2 && costLineRegex.MatchString(line):
			cost, err := strconv.Atoi(costLineRegex.FindStringSubmatch(line)[1])
			if err != nil {
				return entities.Recipe{}, false
			}
			recipe.Cost = cost
			next = 3
		default:
			return entities.Recipe{}, false
		}
	}

	if err := recipe.Validate(); err != nil {
		return entities.Recipe{}, false
	}
	return recipe, true
}

func parseResultLine(line string) (entities.Ref, bool) {
	m := resultLineRegex.FindStringSubmatch(line)
	if m == nil {
		return entities.Ref{}, false
	}
	return parseRef(m[1], m[2])
}

func parseMaterialLine(line string, index int) (entities.Material, bool) {
	m := materialLineRegex.FindStringSubmatch(line)
	if m == nil {
		return entities.Material{}, false
	}

	// Material lines are numbered and must appear in order
	if m[1] != strconv.Itoa(index) {
		return entities.Material{}, false
	}

	ref, ok := parseRef(m[2], m[3])
	if !ok {
		return entities.Material{}, false
	}

	qty, err := strconv.Atoi(m[4])
	if err != nil || qty < 1 {
		return entities.Material{}, false
	}

	return entities.Material{Ref: ref, Quantity: qty}, true
}

func parseRef(kindPart, idPart string) (entities.Ref, bool) {
	kind, err := entities.ParseKind(kindPart)
	if err != nil {
		return entities.Ref{}, false
	}

	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return entities.Ref{}, false
	}

	return entities.NewRef(kind, id), true
}

// splitLines breaks a block body into trimmed, non-empty lines
func splitLines(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Render writes a recipe back out in the canonical block layout. Optional
// fields at their defaults are omitted. For two-material recipes (the
// grammar's arity) parsing the rendered text yields the identical recipe.
func Render(recipe entities.Recipe) string {
	var b strings.Builder
	b.WriteString("<recipe>\n")
	fmt.Fprintf(&b, "%s: %s %d\n", keyResult, recipe.Result.Kind, recipe.Result.ID)
	for i, m := range recipe.Materials {
		fmt.Fprintf(&b, "material%d: %s %d x%d\n", i+1, m.Ref.Kind, m.Ref.ID, m.Quantity)
	}
	if recipe.Description != "" {
		fmt.Fprintf(&b, "%s: %s\n", keyDescription, recipe.Description)
	}
	if recipe.Requirement != nil {
		fmt.Fprintf(&b, "%s: %s %d\n", keyRequirement, recipe.Requirement.Kind, recipe.Requirement.ID)
	}
	if recipe.Cost > 0 {
		fmt.Fprintf(&b, "%s: %d\n", keyCost, recipe.Cost)
	}
	b.WriteString("</recipe>")
	return b.String()
}
