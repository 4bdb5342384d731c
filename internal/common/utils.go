package common

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes   = regexp.MustCompile(`-{2,}`)
	validSlugPat = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify converts an arbitrary title or filename into a kebab-case name
// usable as a Beat folder name.
// Example: "Machine Learning: The Basics!" -> "machine-learning-the-basics"
func Slugify(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	slug := slugInvalid.ReplaceAllString(lowered, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether a name is already safe to use as a Beat
// folder name.
func IsValidSlug(s string) bool {
	return validSlugPat.MatchString(s)
}

// SplitCommaList splits a comma-separated flag value, trimming whitespace
// and dropping empty entries.
// Example: "ai, strategy , " -> ["ai", "strategy"]
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
