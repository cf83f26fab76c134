package ai

import (
	"context"
	"encoding/json"
	"strings"
)

const analyzeMaxTokens = 500

// AnalysisResult is the structured outcome of reply analysis. Fields mirror
// the JSON shape the analysis prompt demands from the model.
type AnalysisResult struct {
	Sentiment       string `json:"sentiment"`        // positive, neutral or negative
	Intent          string `json:"intent"`           // interested, maybe or not_interested
	InshallahScore  int    `json:"inshallah_score"`  // 1-10 ambiguity heuristic for vague affirmative replies
	SuggestedAction string `json:"suggested_action"`
	Analysis        string `json:"analysis"`
}

// AnalyzeResponse sends a reply message to the backend for sentiment and
// intent analysis. Backend call failures propagate to the caller; parsing
// failures never do. Malformed model output degrades to a fixed neutral
// default so an unpredictable reply can never block the outreach workflow.
func (c *Client) AnalyzeResponse(ctx context.Context, message, contextNote string) (*AnalysisResult, error) {
	prompt := buildAnalysisPrompt(message, contextNote)

	// No system prompt on this path; the instruction is the whole message.
	completion, err := c.Complete(ctx, "", prompt, analyzeMaxTokens)
	if err != nil {
		return nil, err
	}

	return parseAnalysis(completion.Text), nil
}

// buildAnalysisPrompt renders the fixed JSON-demand instruction with the
// reply embedded verbatim.
func buildAnalysisPrompt(message, contextNote string) string {
	var b strings.Builder
	b.WriteString("حلل هذا الرد وأجب بـ JSON فقط:\n")
	b.WriteString("\"" + message + "\"\n")
	if contextNote != "" {
		b.WriteString("\nسياق: " + contextNote + "\n")
	}
	b.WriteString("\n{\"sentiment\": \"positive/neutral/negative\", \"intent\": \"interested/maybe/not_interested\", \"inshallah_score\": 1-10, \"suggested_action\": \"...\", \"analysis\": \"...\"}")
	return b.String()
}

// parseAnalysis is deliberately lenient: find the first '{' and the last
// '}', try a strict decode of that span, and on any failure return the
// fixed default carrying the raw text. Two-stage try-strict-else-default,
// kept isolated to this one operation.
func parseAnalysis(raw string) *AnalysisResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start != -1 && end > start {
		var result AnalysisResult
		if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err == nil {
			return &result
		}
	}

	return &AnalysisResult{
		Sentiment:       "neutral",
		Intent:          "maybe",
		InshallahScore:  5,
		SuggestedAction: "follow up",
		Analysis:        raw,
	}
}
