package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug lowercases name, collapses every run of characters outside
// [a-z0-9] into one hyphen and trims hyphens from both ends.
func GenerateSlug(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ResolveSlug returns explicit when it is non-empty after trimming, and the
// slug derived from name otherwise.
func ResolveSlug(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return GenerateSlug(name)
}

// RenamedSlug picks the slug after an edit moved a record's name from
// oldName to newName. A non-empty explicit slug wins. Otherwise the slug is
// derived again when the name changed or the slug is empty.
func RenamedSlug(current, oldName, newName string, explicit *string) string {
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		return strings.TrimSpace(*explicit)
	}
	if newName != oldName || current == "" {
		return GenerateSlug(newName)
	}
	return current
}
