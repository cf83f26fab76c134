package ai

import (
	"fmt"
	"strings"

	"faris/internal/models"
)

// Channel selects the delivery medium and its prompt constraints
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
	ChannelWhatsApp Channel = "whatsapp"
)

// ParseChannel validates a channel string from the API
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelEmail, ChannelLinkedIn, ChannelWhatsApp:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// Tone is the voice the generated message is written in
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneFriendly     Tone = "friendly"
)

// ParseTone validates a tone string from the API
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneProfessional, ToneCasual, ToneFormal, ToneFriendly:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// Language is the tenant's message language preference
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
	LanguageMixed   Language = "mixed"
)

// ParseLanguage validates a language string from the API
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageArabic, LanguageEnglish, LanguageMixed:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// SubjectMarker is the literal line prefix the email prompt instructs the
// model to emit before the subject.
const SubjectMarker = "الموضوع:"

// toneDescriptor maps a tone to the human-readable descriptor embedded in
// the system prompt. Unknown tones fall back to the professional descriptor.
func toneDescriptor(t Tone) string {
	switch t {
	case ToneCasual:
		return "ودي وغير رسمي"
	case ToneFormal:
		return "رسمي جداً"
	case ToneFriendly:
		return "ودود ودافئ"
	case ToneProfessional:
		return "محترف ومهني"
	default:
		return "محترف ومهني"
	}
}

// languageInstruction returns the writing-language rule for the system
// prompt. Anything other than ar/en (including empty) means mixed.
func languageInstruction(l Language) string {
	switch l {
	case LanguageArabic:
		return "اكتب بالعربية فقط."
	case LanguageEnglish:
		return "Write in English only."
	default:
		return "اكتب بمزيج من العربية والإنجليزية بطريقة طبيعية للأعمال السعودية."
	}
}

// channelInstruction returns the per-channel length and format constraints
func channelInstruction(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return "رسالة بريد إلكتروني. ابدأ بـ '" + SubjectMarker + "' ثم الرسالة. 150-200 كلمة."
	case ChannelLinkedIn:
		return "رسالة LinkedIn قصيرة. أقل من 300 حرف. بدون موضوع."
	case ChannelWhatsApp:
		return "رسالة WhatsApp قصيرة جداً. أقل من 200 حرف. بدون موضوع. إيموجي 1-2 فقط."
	default:
		return ""
	}
}

// BuildSystemPrompt renders the system prompt from the tenant profile and
// channel. Pure string assembly over the supplied data.
func BuildSystemPrompt(profile *models.CompanyProfile, channel Channel) string {
	companyName := strOr(profile.CompanyName, "شركتنا")
	valueProp := strOr(profile.ValueProposition, "خدمات متميزة")
	audience := strOr(profile.TargetAudience, "الشركات")
	script := strOr(profile.SDRScript, "")

	var b strings.Builder
	b.WriteString("أنت مندوب مبيعات محترف في السعودية.\n\n")
	b.WriteString("شركتك: " + companyName + "\n")
	b.WriteString("ماذا تقدم: " + valueProp + "\n")
	b.WriteString("الجمهور: " + audience + "\n\n")
	if script != "" {
		b.WriteString(script + "\n\n")
	}
	b.WriteString("النبرة: " + toneDescriptor(Tone(profile.Tone)) + "\n")
	b.WriteString(languageInstruction(Language(profile.Language)) + "\n")
	b.WriteString(channelInstruction(channel) + "\n\n")
	b.WriteString("قواعد: لا تكذب. كن مباشراً. احترم وقت المتلقي. اذكر شيئاً محدداً عن العميل.")

	return b.String()
}

// BuildUserPrompt renders the user prompt from the lead record. Lead lines
// beyond the company name are included only when non-empty, in a fixed
// order: industry, funding, contact name.
func BuildUserPrompt(lead *models.Lead, channel Channel, customContext string) string {
	companyName := lead.CompanyName
	if companyName == "" {
		companyName = "غير معروف"
	}

	var b strings.Builder
	b.WriteString("اكتب رسالة " + string(channel) + " لـ:\n\n")
	b.WriteString("الشركة: " + companyName + "\n")

	if v := deref(lead.Industry); v != "" {
		b.WriteString("المجال: " + v + "\n")
	}
	if v := deref(lead.FundingAmount); v != "" {
		b.WriteString("التمويل: " + v + "\n")
	}
	if v := deref(lead.ContactName); v != "" {
		b.WriteString("جهة الاتصال: " + v + "\n")
	}

	if customContext != "" {
		b.WriteString("\nسياق: " + customContext + "\n")
	}

	b.WriteString("\nاكتب الرسالة:")
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
