package server

import (
	"time"

	"faris/internal/ai"
	"faris/internal/auth"
	"faris/internal/cache"
	"faris/internal/config"
	"faris/internal/database"
	"faris/internal/email"
	"faris/internal/handlers"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo        *echo.Echo
	db          *sqlx.DB
	config      *config.Config
	logger      zerolog.Logger
	cache       *cache.Cache
	aiClient    *ai.Client
	authManager *auth.Manager
	email       *email.EmailService
}

// New creates a new server instance. aiClient may be nil when no API key is
// configured; the AI endpoints then answer 503.
func New(cfg *config.Config, db *sqlx.DB, logger zerolog.Logger, aiClient *ai.Client) *Server {
	return &Server{
		config:      cfg,
		db:          db,
		logger:      logger,
		cache:       cache.New(),
		aiClient:    aiClient,
		authManager: auth.NewManager(cfg),
		email:       email.NewEmailService(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.HideBanner = true

	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	orgs := database.NewOrgService(s.db)
	profiles := database.NewProfileService(s.db)
	leads := database.NewLeadService(s.db)
	campaigns := database.NewCampaignService(s.db)
	sources := database.NewSourceService(s.db)
	integrations := database.NewIntegrationService(s.db)
	messages := database.NewMessageService(s.db)
	activity := database.NewActivityService(s.db)
	dashboard := database.NewDashboardService(s.db)
	usage := database.NewUsageService(s.db)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints at root level for monitoring
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	api := s.echo.Group("/api")
	api.GET("/", handlers.RootHandler(s.config.Version))

	// Public auth routes
	api.POST("/auth/register", handlers.RegisterHandler(orgs, s.authManager))
	api.POST("/auth/login", handlers.LoginHandler(orgs, s.authManager))

	// Everything below requires a valid token
	authed := api.Group("", auth.Middleware(s.authManager))

	authed.GET("/auth/me", handlers.MeHandler(orgs))

	authed.GET("/profile", handlers.GetProfileHandler(profiles))
	authed.PUT("/profile", handlers.UpdateProfileHandler(profiles))

	authed.GET("/leads", handlers.ListLeadsHandler(leads))
	authed.POST("/leads", handlers.CreateLeadHandler(leads, activity))
	authed.POST("/leads/import", handlers.ImportLeadsHandler(leads, usage, activity))
	authed.GET("/leads/:id", handlers.GetLeadHandler(leads))
	authed.PUT("/leads/:id", handlers.UpdateLeadHandler(leads))
	authed.DELETE("/leads/:id", handlers.DeleteLeadHandler(leads))
	authed.GET("/leads/:id/messages", handlers.ListLeadMessagesHandler(leads, messages))

	authed.GET("/campaigns", handlers.ListCampaignsHandler(campaigns))
	authed.POST("/campaigns", handlers.CreateCampaignHandler(campaigns, activity))
	authed.GET("/campaigns/:id", handlers.GetCampaignHandler(campaigns))
	authed.POST("/campaigns/:id/start", handlers.StartCampaignHandler(campaigns))
	authed.POST("/campaigns/:id/pause", handlers.PauseCampaignHandler(campaigns))

	authed.GET("/sources", handlers.ListDataSourcesHandler(sources))
	authed.POST("/sources", handlers.CreateDataSourceHandler(sources))
	authed.GET("/sources/industries", handlers.ListIndustrySourcesHandler(sources))
	authed.POST("/sources/industries/:id/enable", handlers.EnableIndustrySourceHandler(sources))

	authed.GET("/integrations", handlers.ListIntegrationsHandler(integrations))
	authed.POST("/integrations", handlers.CreateIntegrationHandler(integrations))
	authed.DELETE("/integrations/:id", handlers.DeleteIntegrationHandler(integrations))

	authed.POST("/messages/:id/send", handlers.SendMessageHandler(messages, leads, usage, activity, s.email))

	authed.GET("/dashboard/stats", handlers.DashboardStatsHandler(dashboard, s.cache, s.config.StatsCacheTTL))
	authed.GET("/dashboard/activity", handlers.DashboardActivityHandler(activity))

	authed.POST("/ai/generate-message", handlers.GenerateMessageHandler(s.aiClient, leads, profiles, messages, usage, activity))
	authed.POST("/ai/score-lead", handlers.ScoreLeadHandler(leads, activity))
	authed.POST("/ai/analyze-response", handlers.AnalyzeResponseHandler(s.aiClient))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
