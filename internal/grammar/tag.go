package grammar

import (
	"regexp"
	"strings"
)

// HasTag reports whether the note text carries the standalone annotation
// marker <tag>. Matching is case-insensitive and requires the whole marker,
// so a <stun> lookup never matches a <stunned> annotation. This is the same
// text-scanning primitive the recipe parser uses, serving the combat
// targetability check.
func HasTag(note, tag string) bool {
	tag = strings.TrimSpace(tag)
	if note == "" || tag == "" {
		return false
	}

	pattern, err := regexp.Compile(`(?i)<` + regexp.QuoteMeta(tag) + `>`)
	if err != nil {
		return false
	}
	return pattern.MatchString(note)
}
