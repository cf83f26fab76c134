package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Organization represents a tenant account
type Organization struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Slug             string         `json:"slug" db:"slug"`
	LogoURL          *string        `json:"logo_url" db:"logo_url"`
	SubscriptionTier string         `json:"subscription_tier" db:"subscription_tier"`
	Settings         types.JSONText `json:"settings" db:"settings"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// User represents a member of an organization
type User struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash *string    `json:"-" db:"password_hash"`
	Name         *string    `json:"name" db:"name"`
	AvatarURL    *string    `json:"avatar_url" db:"avatar_url"`
	OrgID        string     `json:"org_id" db:"org_id"`
	Role         string     `json:"role" db:"role"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// CompanyProfile holds the tenant's sales identity used for prompt building.
// Read-only input for the AI subsystem; mutated only through the profile API.
type CompanyProfile struct {
	ID                 string         `json:"id" db:"id"`
	OrgID              string         `json:"org_id" db:"org_id"`
	CompanyName        *string        `json:"company_name" db:"company_name"`
	CompanyNameAr      *string        `json:"company_name_ar" db:"company_name_ar"`
	Industry           *string        `json:"industry" db:"industry"`
	Website            *string        `json:"website" db:"website"`
	ValueProposition   *string        `json:"value_proposition" db:"value_proposition"`
	ValuePropositionAr *string        `json:"value_proposition_ar" db:"value_proposition_ar"`
	TargetAudience     *string        `json:"target_audience" db:"target_audience"`
	PainPoints         pq.StringArray `json:"pain_points" db:"pain_points" swaggertype:"array,string"`
	Differentiators    pq.StringArray `json:"differentiators" db:"differentiators" swaggertype:"array,string"`
	Tone               string         `json:"tone" db:"tone"`
	Language           string         `json:"language" db:"language"`
	SDRScript          *string        `json:"sdr_script" db:"sdr_script"`
	SDRScriptAr        *string        `json:"sdr_script_ar" db:"sdr_script_ar"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`
}

// IndustrySource is a curated lead source shared across tenants
type IndustrySource struct {
	ID            string         `json:"id" db:"id"`
	Industry      string         `json:"industry" db:"industry"`
	IndustryAr    *string        `json:"industry_ar" db:"industry_ar"`
	Name          string         `json:"name" db:"name"`
	NameAr        *string        `json:"name_ar" db:"name_ar"`
	Description   *string        `json:"description" db:"description"`
	DescriptionAr *string        `json:"description_ar" db:"description_ar"`
	SourceType    string         `json:"source_type" db:"source_type"`
	URL           string         `json:"url" db:"url"`
	ScrapeConfig  types.JSONText `json:"scrape_config" db:"scrape_config"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	Region        string         `json:"region" db:"region"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

// DataSource is a tenant-enabled lead source
type DataSource struct {
	ID               string         `json:"id" db:"id"`
	OrgID            string         `json:"org_id" db:"org_id"`
	IndustrySourceID *string        `json:"industry_source_id" db:"industry_source_id"`
	Name             string         `json:"name" db:"name"`
	SourceType       string         `json:"source_type" db:"source_type"`
	URL              *string        `json:"url" db:"url"`
	ScrapeConfig     types.JSONText `json:"scrape_config" db:"scrape_config"`
	IsActive         bool           `json:"is_active" db:"is_active"`
	LastScrapedAt    *time.Time     `json:"last_scraped_at" db:"last_scraped_at"`
	LastError        *string        `json:"last_error" db:"last_error"`
	LeadsCount       int            `json:"leads_count" db:"leads_count"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// Lead represents a prospective customer record targeted for outreach.
// Score and ScoreBreakdown are owned by the scorer; everything else belongs
// to the CRUD layer.
type Lead struct {
	ID            string         `json:"id" db:"id"`
	OrgID         string         `json:"org_id" db:"org_id"`
	CompanyName   string         `json:"company_name" db:"company_name"`
	CompanyNameAr *string        `json:"company_name_ar" db:"company_name_ar"`
	Website       *string        `json:"website" db:"website"`
	Industry      *string        `json:"industry" db:"industry"`
	ContactName   *string        `json:"contact_name" db:"contact_name"`
	ContactTitle  *string        `json:"contact_title" db:"contact_title"`
	Email         *string        `json:"email" db:"email"`
	Phone         *string        `json:"phone" db:"phone"`
	LinkedInURL   *string        `json:"linkedin_url" db:"linkedin_url"`
	FundingAmount *string        `json:"funding_amount" db:"funding_amount"`
	FundingStage  *string        `json:"funding_stage" db:"funding_stage"`
	EmployeeCount *string        `json:"employee_count" db:"employee_count"`
	Location      *string        `json:"location" db:"location"`
	SourceID      *string        `json:"source_id" db:"source_id"`
	SourceURL     *string        `json:"source_url" db:"source_url"`
	Score         int            `json:"score" db:"score"`
	ScoreBreakdown types.JSONText `json:"score_breakdown" db:"score_breakdown"`
	Status        string         `json:"status" db:"status"`
	Notes         *string        `json:"notes" db:"notes"`
	Tags          pq.StringArray `json:"tags" db:"tags" swaggertype:"array,string"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// Campaign groups outreach over a filtered set of leads
type Campaign struct {
	ID               string         `json:"id" db:"id"`
	OrgID            string         `json:"org_id" db:"org_id"`
	Name             string         `json:"name" db:"name"`
	Description      *string        `json:"description" db:"description"`
	TargetIndustries pq.StringArray `json:"target_industries" db:"target_industries" swaggertype:"array,string"`
	TargetStatuses   pq.StringArray `json:"target_statuses" db:"target_statuses" swaggertype:"array,string"`
	MinScore         int            `json:"min_score" db:"min_score"`
	MaxLeads         *int           `json:"max_leads" db:"max_leads"`
	Channels         pq.StringArray `json:"channels" db:"channels" swaggertype:"array,string"`
	DailyLimit       int            `json:"daily_limit" db:"daily_limit"`
	SendTimes        types.JSONText `json:"send_times" db:"send_times"`
	SubjectTemplate  *string        `json:"email_subject_template" db:"email_subject_template"`
	MessageTemplate  *string        `json:"message_template" db:"message_template"`
	Status           string         `json:"status" db:"status"`
	LeadsContacted   int            `json:"leads_contacted" db:"leads_contacted"`
	RepliesReceived  int            `json:"replies_received" db:"replies_received"`
	MeetingsBooked   int            `json:"meetings_booked" db:"meetings_booked"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	StartedAt        *time.Time     `json:"started_at" db:"started_at"`
	PausedAt         *time.Time     `json:"paused_at" db:"paused_at"`
	CompletedAt      *time.Time     `json:"completed_at" db:"completed_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// Message is an outreach message draft or sent record for a lead
type Message struct {
	ID                  string         `json:"id" db:"id"`
	OrgID               string         `json:"org_id" db:"org_id"`
	LeadID              string         `json:"lead_id" db:"lead_id"`
	CampaignID          *string        `json:"campaign_id" db:"campaign_id"`
	Channel             string         `json:"channel" db:"channel"`
	Subject             *string        `json:"subject" db:"subject"`
	Body                string         `json:"body" db:"body"`
	AIGenerated         bool           `json:"ai_generated" db:"ai_generated"`
	PersonalizationData types.JSONText `json:"personalization_data" db:"personalization_data"`
	Status              string         `json:"status" db:"status"`
	SentAt              *time.Time     `json:"sent_at" db:"sent_at"`
	RepliedAt           *time.Time     `json:"replied_at" db:"replied_at"`
	ErrorMessage        *string        `json:"error_message" db:"error_message"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}

// Integration is a third-party delivery or CRM connection for a tenant
type Integration struct {
	ID             string         `json:"id" db:"id"`
	OrgID          string         `json:"org_id" db:"org_id"`
	Type           string         `json:"type" db:"type"`
	Name           *string        `json:"name" db:"name"`
	Config         types.JSONText `json:"-" db:"config"`
	IsActive       bool           `json:"is_active" db:"is_active"`
	LastVerifiedAt *time.Time     `json:"last_verified_at" db:"last_verified_at"`
	LastError      *string        `json:"last_error" db:"last_error"`
	DailyLimit     *int           `json:"daily_limit" db:"daily_limit"`
	UsedToday      int            `json:"used_today" db:"used_today"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// ActivityEntry is an audit log row scoped to an organization
type ActivityEntry struct {
	ID         string         `json:"id" db:"id"`
	OrgID      string         `json:"org_id" db:"org_id"`
	UserID     *string        `json:"user_id" db:"user_id"`
	Action     string         `json:"action" db:"action"`
	EntityType *string        `json:"entity_type" db:"entity_type"`
	EntityID   *string        `json:"entity_id" db:"entity_id"`
	Details    types.JSONText `json:"details" db:"details"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}
