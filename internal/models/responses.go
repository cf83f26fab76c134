package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// ErrorResponse is the generic error payload returned by handlers
// @Description Error payload
type ErrorResponse struct {
	Error string `json:"error" example:"lead not found"` // Error message
}

// UserResponse is the public view of a user
// @Description User payload
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      string  `json:"role" example:"owner"`
	OrgID     string  `json:"org_id"`
	CreatedAt string  `json:"created_at"`
}

// TokenResponse is returned by register and login
// @Description Access token payload
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"bearer"`
	ExpiresIn   int          `json:"expires_in" example:"86400"` // Lifetime in seconds
	User        UserResponse `json:"user"`
}

// LeadListResponse is a paginated page of leads
// @Description Paginated leads payload
type LeadListResponse struct {
	Leads      []Lead `json:"leads"`
	Total      int    `json:"total" example:"42"`
	Page       int    `json:"page" example:"1"`
	PageSize   int    `json:"page_size" example:"20"`
	TotalPages int    `json:"total_pages" example:"3"`
}

// ImportResult reports the outcome of a CSV lead import
// @Description CSV import result
type ImportResult struct {
	Imported int `json:"imported" example:"18"` // Rows inserted
	Skipped  int `json:"skipped" example:"2"`   // Rows skipped as duplicates
}

// DashboardStats aggregates tenant-wide outreach numbers
// @Description Dashboard statistics payload
type DashboardStats struct {
	TotalLeads      int            `json:"total_leads"`
	LeadsThisMonth  int            `json:"leads_this_month"`
	MessagesSent    int            `json:"messages_sent"`
	RepliesReceived int            `json:"replies_received"`
	ReplyRate       float64        `json:"reply_rate" example:"12.5"` // Percent, one decimal
	ActiveCampaigns int            `json:"active_campaigns"`
	LeadsByStatus   map[string]int `json:"leads_by_status"`
	LeadsByScore    map[string]int `json:"leads_by_score"`   // high (>=7), medium (>=4), low
	LeadsByIndustry map[string]int `json:"leads_by_industry"`
}

// ActivityItem is a single audit log entry in API form
// @Description Activity log entry
type ActivityItem struct {
	ID         string                 `json:"id"`
	Action     string                 `json:"action" example:"ai.message_generated"`
	EntityType *string                `json:"entity_type,omitempty"`
	EntityID   *string                `json:"entity_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

// GenerateMessageResponse carries a generated outreach draft
// @Description Generated message payload
type GenerateMessageResponse struct {
	MessageID           string            `json:"message_id"`                  // Persisted draft message id
	Subject             *string           `json:"subject"`                     // Only set for the email channel
	Body                string            `json:"body"`
	TokensUsed          int               `json:"tokens_used" example:"311"`
	PersonalizationData map[string]string `json:"personalization_data"`        // Lead snapshot at generation time
}

// ScoreLeadResponse carries the deterministic score result
// @Description Lead score payload
type ScoreLeadResponse struct {
	Score     int            `json:"score" example:"9"`
	Breakdown map[string]int `json:"breakdown"` // funding, contact, industry, base
	Reasons   []string       `json:"reasons" example:"large funding"`
}

// AnalyzeResponseResponse carries the reply analysis result
// @Description Reply analysis payload
type AnalyzeResponseResponse struct {
	Sentiment       string  `json:"sentiment" example:"neutral"`       // positive, neutral or negative
	Intent          string  `json:"intent" example:"maybe"`            // interested, maybe or not_interested
	InshallahScore  int     `json:"inshallah_score" example:"5"`       // 1-10, ambiguity heuristic for vague replies
	SuggestedAction *string `json:"suggested_action" example:"follow up"`
	Analysis        *string `json:"analysis"`
	ReplyLanguage   string  `json:"reply_language,omitempty" example:"ar"` // Detected script of the reply
}

// SendMessageResponse reports the outcome of sending a message
// @Description Message send result
type SendMessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"sent"`
	Error   string `json:"error,omitempty"`
}
