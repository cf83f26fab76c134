package ai

import (
	"strings"
	"testing"

	"faris/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseChannel(t *testing.T) {
	for _, valid := range []string{"email", "linkedin", "whatsapp"} {
		ch, err := ParseChannel(valid)
		assert.NoError(t, err)
		assert.Equal(t, Channel(valid), ch)
	}

	for _, invalid := range []string{"", "sms", "EMAIL", "telegram"} {
		_, err := ParseChannel(invalid)
		assert.Error(t, err)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name     string
		profile  *models.CompanyProfile
		channel  Channel
		contains []string
		excludes []string
	}{
		{
			name: "full profile on email channel",
			profile: &models.CompanyProfile{
				CompanyName:      strPtr("Riyadh Tech"),
				ValueProposition: strPtr("نؤتمت المبيعات"),
				TargetAudience:   strPtr("شركات التقنية"),
				SDRScript:        strPtr("ركز على توفير الوقت"),
				Tone:             "friendly",
				Language:         "ar",
			},
			channel: ChannelEmail,
			contains: []string{
				"شركتك: Riyadh Tech",
				"ماذا تقدم: نؤتمت المبيعات",
				"الجمهور: شركات التقنية",
				"ركز على توفير الوقت",
				"النبرة: ودود ودافئ",
				"اكتب بالعربية فقط.",
				SubjectMarker,
				"قواعد: لا تكذب.",
			},
		},
		{
			name:    "empty profile falls back to placeholders and defaults",
			profile: &models.CompanyProfile{},
			channel: ChannelLinkedIn,
			contains: []string{
				"شركتك: شركتنا",
				"ماذا تقدم: خدمات متميزة",
				"الجمهور: الشركات",
				"النبرة: محترف ومهني",
				"اكتب بمزيج من العربية والإنجليزية",
				"أقل من 300 حرف",
			},
			excludes: []string{SubjectMarker},
		},
		{
			name: "english preference on whatsapp",
			profile: &models.CompanyProfile{
				Tone:     "formal",
				Language: "en",
			},
			channel: ChannelWhatsApp,
			contains: []string{
				"النبرة: رسمي جداً",
				"Write in English only.",
				"إيموجي 1-2 فقط",
			},
			excludes: []string{SubjectMarker},
		},
		{
			name: "unknown tone defaults to professional",
			profile: &models.CompanyProfile{
				Tone: "sarcastic",
			},
			channel:  ChannelEmail,
			contains: []string{"النبرة: محترف ومهني"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildSystemPrompt(tt.profile, tt.channel)

			for _, s := range tt.contains {
				assert.Contains(t, prompt, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, prompt, s)
			}
		})
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	profile := &models.CompanyProfile{
		CompanyName: strPtr("Acme"),
		Tone:        "casual",
		Language:    "mixed",
	}

	first := BuildSystemPrompt(profile, ChannelEmail)
	assert.Equal(t, first, BuildSystemPrompt(profile, ChannelEmail))
}

func TestBuildUserPrompt(t *testing.T) {
	tests := []struct {
		name          string
		lead          *models.Lead
		channel       Channel
		customContext string
		contains      []string
		excludes      []string
	}{
		{
			name: "full lead includes optional lines in fixed order",
			lead: &models.Lead{
				CompanyName:   "Tamara",
				Industry:      strPtr("Fintech"),
				FundingAmount: strPtr("$100 million"),
				ContactName:   strPtr("Sara"),
			},
			channel: ChannelEmail,
			contains: []string{
				"اكتب رسالة email لـ:",
				"الشركة: Tamara",
				"المجال: Fintech",
				"التمويل: $100 million",
				"جهة الاتصال: Sara",
				"اكتب الرسالة:",
			},
		},
		{
			name:     "missing company name renders placeholder",
			lead:     &models.Lead{},
			channel:  ChannelWhatsApp,
			contains: []string{"الشركة: غير معروف"},
			excludes: []string{"المجال:", "التمويل:", "جهة الاتصال:", "سياق:"},
		},
		{
			name: "custom context block is included when provided",
			lead: &models.Lead{
				CompanyName: "Salla",
			},
			channel:       ChannelLinkedIn,
			customContext: "they just opened a Riyadh office",
			contains:      []string{"سياق: they just opened a Riyadh office"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildUserPrompt(tt.lead, tt.channel, tt.customContext)

			for _, s := range tt.contains {
				assert.Contains(t, prompt, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, prompt, s)
			}
		})
	}
}

func TestBuildUserPromptFieldOrder(t *testing.T) {
	lead := &models.Lead{
		CompanyName:   "Acme",
		Industry:      strPtr("SaaS"),
		FundingAmount: strPtr("Series A"),
		ContactName:   strPtr("Omar"),
	}

	prompt := BuildUserPrompt(lead, ChannelEmail, "")

	industryIdx := strings.Index(prompt, "المجال:")
	fundingIdx := strings.Index(prompt, "التمويل:")
	contactIdx := strings.Index(prompt, "جهة الاتصال:")

	assert.True(t, industryIdx < fundingIdx, "industry must precede funding")
	assert.True(t, fundingIdx < contactIdx, "funding must precede contact name")
}
