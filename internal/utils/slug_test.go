package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
	}{
		{name: "simple name", input: "Riyadh Tech", wantPrefix: "riyadh-tech-"},
		{name: "punctuation stripped", input: "Al-Faisal & Sons, Ltd.", wantPrefix: "al-faisal-sons-ltd-"},
		{name: "arabic only falls back", input: "شركة الرياض", wantPrefix: "org-"},
		{name: "extra whitespace", input: "  Acme   Corp  ", wantPrefix: "acme-corp-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := Slugify(tt.input)
			assert.True(t, strings.HasPrefix(slug, tt.wantPrefix), "got %q", slug)
			// 8 hex chars of randomness after the prefix
			assert.Len(t, slug, len(tt.wantPrefix)+8)
		})
	}
}

func TestSlugify_Unique(t *testing.T) {
	a := Slugify("Riyadh Tech")
	b := Slugify("Riyadh Tech")
	assert.NotEqual(t, a, b)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Fintech", TitleCase("fintech"))
	assert.Equal(t, "Food Delivery", TitleCase(" food delivery "))
}
