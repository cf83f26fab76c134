package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReplyLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "pure arabic",
			text: "شكرا جزيلا، نحن مهتمون بالتعاون معكم",
			want: "ar",
		},
		{
			name: "pure english",
			text: "Thanks, let's schedule a call next week",
			want: "en",
		},
		{
			name: "mixed arabic and english",
			text: "ان شاء الله we will follow up next week مع السلامة",
			want: "mixed",
		},
		{
			name: "empty defaults to english",
			text: "",
			want: "en",
		},
		{
			name: "numbers only default to english",
			text: "123 456",
			want: "en",
		},
		{
			name: "short arabic phrase with punctuation",
			text: "ممتاز!",
			want: "ar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectReplyLanguage(tt.text))
		})
	}
}
