package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateTables creates all application tables if they don't exist. Run once
// at startup; every statement is idempotent.
func CreateTables(db *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(100) UNIQUE NOT NULL,
			logo_url TEXT,
			subscription_tier VARCHAR(50) DEFAULT 'free',
			settings JSONB DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255),
			name VARCHAR(255),
			avatar_url TEXT,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			role VARCHAR(50) DEFAULT 'member',
			last_login_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS company_profiles (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) UNIQUE REFERENCES organizations(id) ON DELETE CASCADE,
			company_name VARCHAR(255),
			company_name_ar VARCHAR(255),
			industry VARCHAR(100),
			website TEXT,
			value_proposition TEXT,
			value_proposition_ar TEXT,
			target_audience TEXT,
			pain_points TEXT[],
			differentiators TEXT[],
			tone VARCHAR(50) DEFAULT 'professional',
			language VARCHAR(10) DEFAULT 'mixed',
			sdr_script TEXT,
			sdr_script_ar TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS industry_sources (
			id VARCHAR(36) PRIMARY KEY,
			industry VARCHAR(100) NOT NULL,
			industry_ar VARCHAR(100),
			name VARCHAR(255) NOT NULL,
			name_ar VARCHAR(255),
			description TEXT,
			description_ar TEXT,
			source_type VARCHAR(50) NOT NULL,
			url TEXT NOT NULL,
			scrape_config JSONB NOT NULL DEFAULT '{}',
			is_active BOOLEAN DEFAULT TRUE,
			region VARCHAR(50) DEFAULT 'saudi',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS data_sources (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			industry_source_id VARCHAR(36) REFERENCES industry_sources(id),
			name VARCHAR(255) NOT NULL,
			source_type VARCHAR(50) NOT NULL,
			url TEXT,
			scrape_config JSONB DEFAULT '{}',
			is_active BOOLEAN DEFAULT TRUE,
			last_scraped_at TIMESTAMP,
			last_error TEXT,
			leads_count INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			company_name VARCHAR(255) NOT NULL,
			company_name_ar VARCHAR(255),
			website TEXT,
			industry VARCHAR(100),
			contact_name VARCHAR(255),
			contact_title VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(50),
			linkedin_url TEXT,
			funding_amount VARCHAR(100),
			funding_stage VARCHAR(50),
			employee_count VARCHAR(50),
			location VARCHAR(255),
			source_id VARCHAR(36) REFERENCES data_sources(id),
			source_url TEXT,
			score INTEGER DEFAULT 0,
			score_breakdown JSONB DEFAULT '{}',
			status VARCHAR(50) DEFAULT 'new',
			notes TEXT,
			tags TEXT[],
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_org_id ON leads(org_id)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_org_status ON leads(org_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS campaigns (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			target_industries TEXT[],
			target_statuses TEXT[],
			min_score INTEGER DEFAULT 5,
			max_leads INTEGER,
			channels TEXT[],
			daily_limit INTEGER DEFAULT 20,
			send_times JSONB,
			email_subject_template TEXT,
			message_template TEXT,
			status VARCHAR(50) DEFAULT 'draft',
			leads_contacted INTEGER DEFAULT 0,
			replies_received INTEGER DEFAULT 0,
			meetings_booked INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			started_at TIMESTAMP,
			paused_at TIMESTAMP,
			completed_at TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			lead_id VARCHAR(36) REFERENCES leads(id) ON DELETE CASCADE,
			campaign_id VARCHAR(36) REFERENCES campaigns(id) ON DELETE SET NULL,
			channel VARCHAR(50) NOT NULL,
			subject TEXT,
			body TEXT NOT NULL,
			ai_generated BOOLEAN DEFAULT FALSE,
			personalization_data JSONB,
			status VARCHAR(50) DEFAULT 'draft',
			sent_at TIMESTAMP,
			replied_at TIMESTAMP,
			error_message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_org_id ON messages(org_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_lead_id ON messages(lead_id)`,
		`CREATE TABLE IF NOT EXISTS integrations (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			type VARCHAR(50) NOT NULL,
			name VARCHAR(255),
			config JSONB NOT NULL DEFAULT '{}',
			is_active BOOLEAN DEFAULT TRUE,
			last_verified_at TIMESTAMP,
			last_error TEXT,
			daily_limit INTEGER,
			used_today INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS activity_log (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			user_id VARCHAR(36) REFERENCES users(id) ON DELETE SET NULL,
			action VARCHAR(100) NOT NULL,
			entity_type VARCHAR(50),
			entity_id VARCHAR(36),
			details JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_log_org_created ON activity_log(org_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS usage (
			id VARCHAR(36) PRIMARY KEY,
			org_id VARCHAR(36) REFERENCES organizations(id) ON DELETE CASCADE,
			month DATE NOT NULL,
			leads_imported INTEGER DEFAULT 0,
			messages_sent INTEGER DEFAULT 0,
			ai_generations INTEGER DEFAULT 0,
			ai_tokens_used INTEGER DEFAULT 0,
			UNIQUE (org_id, month)
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return nil
}
