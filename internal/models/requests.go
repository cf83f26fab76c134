package models

// RegisterRequest is the payload for creating a new organization and owner
// @Description Registration payload
type RegisterRequest struct {
	Email       string `json:"email" example:"fahad@riyadhtech.sa"`       // Owner email
	Password    string `json:"password" example:"s3cret-pass"`            // Password, min 8 chars
	Name        string `json:"name" example:"Fahad"`                      // Owner display name
	CompanyName string `json:"company_name" example:"Riyadh Tech"`        // Organization name
}

// LoginRequest is the payload for the login endpoint
// @Description Login payload
type LoginRequest struct {
	Email    string `json:"email" example:"fahad@riyadhtech.sa"`
	Password string `json:"password" example:"s3cret-pass"`
}

// ProfileUpdateRequest carries partial updates to a company profile.
// Nil fields are left untouched.
type ProfileUpdateRequest struct {
	CompanyName        *string  `json:"company_name"`
	CompanyNameAr      *string  `json:"company_name_ar"`
	Industry           *string  `json:"industry"`
	Website            *string  `json:"website"`
	ValueProposition   *string  `json:"value_proposition"`
	ValuePropositionAr *string  `json:"value_proposition_ar"`
	TargetAudience     *string  `json:"target_audience"`
	PainPoints         []string `json:"pain_points"`
	Differentiators    []string `json:"differentiators"`
	Tone               *string  `json:"tone"`
	Language           *string  `json:"language"`
	SDRScript          *string  `json:"sdr_script"`
	SDRScriptAr        *string  `json:"sdr_script_ar"`
}

// LeadCreateRequest is the payload for creating a lead
// @Description Lead creation payload
type LeadCreateRequest struct {
	CompanyName   string  `json:"company_name" example:"Tamara"`
	CompanyNameAr *string `json:"company_name_ar"`
	Website       *string `json:"website"`
	Industry      *string `json:"industry" example:"Fintech"`
	ContactName   *string `json:"contact_name"`
	ContactTitle  *string `json:"contact_title"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	LinkedInURL   *string `json:"linkedin_url"`
	FundingAmount *string `json:"funding_amount" example:"Series B, $100 million"`
	FundingStage  *string `json:"funding_stage"`
	EmployeeCount *string `json:"employee_count"`
	Location      *string `json:"location"`
}

// LeadUpdateRequest carries partial updates to a lead. Nil fields are left
// untouched. Score and breakdown are not updatable here; only the scorer
// writes those.
type LeadUpdateRequest struct {
	CompanyName   *string  `json:"company_name"`
	CompanyNameAr *string  `json:"company_name_ar"`
	Website       *string  `json:"website"`
	Industry      *string  `json:"industry"`
	ContactName   *string  `json:"contact_name"`
	ContactTitle  *string  `json:"contact_title"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	LinkedInURL   *string  `json:"linkedin_url"`
	FundingAmount *string  `json:"funding_amount"`
	FundingStage  *string  `json:"funding_stage"`
	EmployeeCount *string  `json:"employee_count"`
	Location      *string  `json:"location"`
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
	Tags          []string `json:"tags"`
}

// CampaignCreateRequest is the payload for creating a campaign
// @Description Campaign creation payload
type CampaignCreateRequest struct {
	Name             string                 `json:"name" example:"Q3 Fintech Push"`
	Description      *string                `json:"description"`
	TargetIndustries []string               `json:"target_industries"`
	TargetStatuses   []string               `json:"target_statuses"`
	MinScore         int                    `json:"min_score" example:"5"`
	MaxLeads         *int                   `json:"max_leads"`
	Channels         []string               `json:"channels" example:"email"`
	DailyLimit       int                    `json:"daily_limit" example:"20"`
	SendTimes        map[string]interface{} `json:"send_times"`
	SubjectTemplate  *string                `json:"email_subject_template"`
	MessageTemplate  *string                `json:"message_template"`
}

// DataSourceCreateRequest is the payload for creating a data source
// @Description Data source creation payload
type DataSourceCreateRequest struct {
	Name         string                 `json:"name" example:"MAGNiTT funding news"`
	SourceType   string                 `json:"source_type" example:"rss"`
	URL          *string                `json:"url"`
	ScrapeConfig map[string]interface{} `json:"scrape_config"`
}

// IntegrationCreateRequest is the payload for connecting an integration
// @Description Integration creation payload
type IntegrationCreateRequest struct {
	Type       string                 `json:"type" example:"sendgrid"`
	Name       *string                `json:"name"`
	Config     map[string]interface{} `json:"config"`
	DailyLimit *int                   `json:"daily_limit"`
}

// GenerateMessageRequest asks the AI subsystem for an outreach draft
// @Description Message generation payload
type GenerateMessageRequest struct {
	LeadID        string  `json:"lead_id" example:"0b26df9e-3a1f-4a91-9a7c-8b1f6f8f21af"`
	Channel       string  `json:"channel" example:"email"`   // email, linkedin or whatsapp
	CustomContext *string `json:"custom_context"`            // Optional extra context for the prompt
}

// ScoreLeadRequest asks the deterministic scorer to rescore a lead
// @Description Lead scoring payload
type ScoreLeadRequest struct {
	LeadID string `json:"lead_id" example:"0b26df9e-3a1f-4a91-9a7c-8b1f6f8f21af"`
}

// AnalyzeResponseRequest asks for sentiment/intent analysis of a reply
// @Description Response analysis payload
type AnalyzeResponseRequest struct {
	Message string  `json:"message" example:"ان شاء الله نتواصل معكم قريبا"`
	Context *string `json:"context"` // Optional conversation context
}
