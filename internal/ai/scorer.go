package ai

import (
	"strings"

	"faris/internal/models"
)

// Fixed reason strings emitted alongside category scores
const (
	ReasonLargeFunding      = "large funding"
	ReasonCompleteContact   = "complete contact info"
	ReasonHighValueIndustry = "high-value industry"
)

// Keyword fragments matched case-insensitively as substrings. The list is
// intentionally small and mixes Arabic and English forms common in the
// funding announcements this product ingests.
var (
	fundingKeywords  = []string{"million", "مليون", "series"}
	industryKeywords = []string{"fintech", "ecommerce", "saas", "تقنية"}
)

const maxScore = 10

// ScoreResult is the outcome of the deterministic scorer
type ScoreResult struct {
	Score     int            // Capped total, always in [0,10]
	Breakdown map[string]int // Exactly funding, contact, industry, base
	Reasons   []string       // Order-stable: funding, contact, industry
}

// ScoreLead scores a lead 0-10 from fixed rules. Pure function: no model
// call, no randomness, identical input always yields identical output.
//
// Categories: funding 0-3, contact 0-2, industry 0-2, base always 2. The
// total is capped at 10; individual category values are not.
func ScoreLead(lead *models.Lead) ScoreResult {
	breakdown := make(map[string]int, 4)
	var reasons []string

	// Funding (0-3)
	funding := strings.ToLower(deref(lead.FundingAmount))
	switch {
	case containsAny(funding, fundingKeywords):
		breakdown["funding"] = 3
		reasons = append(reasons, ReasonLargeFunding)
	case funding != "":
		breakdown["funding"] = 1
	default:
		breakdown["funding"] = 0
	}

	// Contact completeness (0-2), one point per channel
	contact := 0
	if deref(lead.Email) != "" {
		contact++
	}
	if deref(lead.Phone) != "" {
		contact++
	}
	breakdown["contact"] = contact
	if contact >= 2 {
		reasons = append(reasons, ReasonCompleteContact)
	}

	// Industry value (0-2)
	industry := strings.ToLower(deref(lead.Industry))
	switch {
	case containsAny(industry, industryKeywords):
		breakdown["industry"] = 2
		reasons = append(reasons, ReasonHighValueIndustry)
	case industry != "":
		breakdown["industry"] = 1
	default:
		breakdown["industry"] = 0
	}

	// Base score, unconditional
	breakdown["base"] = 2

	total := breakdown["funding"] + breakdown["contact"] + breakdown["industry"] + breakdown["base"]
	if total > maxScore {
		total = maxScore
	}

	return ScoreResult{Score: total, Breakdown: breakdown, Reasons: reasons}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
