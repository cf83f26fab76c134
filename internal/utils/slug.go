package utils

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify turns an organization name into a unique URL-safe slug.
// A short random suffix keeps same-named organizations apart.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "org"
	}
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "-")
	}

	return slug + "-" + uuid.NewString()[:8]
}

var titleCaser = cases.Title(language.English)

// TitleCase normalizes an industry label for display, "fintech" to "Fintech"
func TitleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
