package ai

import (
	"context"
	"strings"

	"faris/internal/models"
)

const generateMaxTokens = 1000

// GenerationResult is a parsed outreach draft
type GenerationResult struct {
	Subject             *string           // Set only for email when the output carried a subject line
	Body                string
	TokensUsed          int               // Prompt plus completion tokens
	PersonalizationData map[string]string // Lead field snapshot taken at generation time
}

// GenerateOutreach renders the prompts for the lead and channel, calls the
// completion backend and parses the raw output into subject and body.
func (c *Client) GenerateOutreach(ctx context.Context, profile *models.CompanyProfile, lead *models.Lead, channel Channel, customContext string) (*GenerationResult, error) {
	systemPrompt := BuildSystemPrompt(profile, channel)
	userPrompt := BuildUserPrompt(lead, channel, customContext)

	completion, err := c.Complete(ctx, systemPrompt, userPrompt, generateMaxTokens)
	if err != nil {
		return nil, err
	}

	subject, body := ExtractMessage(completion.Text, channel)

	// Snapshot by value: the audit record must reflect the lead as it was
	// at generation time, not track later edits.
	return &GenerationResult{
		Subject:    subject,
		Body:       body,
		TokensUsed: completion.PromptTokens + completion.CompletionTokens,
		PersonalizationData: map[string]string{
			"company_name": lead.CompanyName,
			"funding":      deref(lead.FundingAmount),
			"industry":     deref(lead.Industry),
		},
	}, nil
}

// ExtractMessage splits the raw model output into subject and body. Only
// the email channel can yield a subject, and only the first line starting
// with the subject marker is honored; later occurrences stay in the body.
// Pure string transform, no model call.
func ExtractMessage(raw string, channel Channel) (*string, string) {
	if channel == ChannelEmail && strings.Contains(raw, SubjectMarker) {
		lines := strings.Split(raw, "\n")
		for i, line := range lines {
			stripped := strings.TrimSpace(line)
			if strings.HasPrefix(stripped, SubjectMarker) {
				subject := strings.TrimSpace(strings.TrimPrefix(stripped, SubjectMarker))
				body := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
				return &subject, body
			}
		}
	}

	return nil, strings.TrimSpace(raw)
}
