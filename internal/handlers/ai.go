package handlers

import (
	"errors"
	"net/http"
	"strings"

	"faris/internal/ai"
	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"
	"faris/internal/utils"

	"github.com/labstack/echo/v4"
)

// GenerateMessageHandler generates an outreach draft for a lead
// @Summary Generate outreach message
// @Description Generates a channel-specific outreach draft for a lead and stores it
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.GenerateMessageRequest true "Generation payload"
// @Success 200 {object} models.GenerateMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/ai/generate-message [post]
func GenerateMessageHandler(aiClient *ai.Client, leads *database.LeadService, profiles *database.ProfileService, messages *database.MessageService, usage *database.UsageService, activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if aiClient == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "AI generation is not configured"})
		}

		var req models.GenerateMessageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		channel, err := ai.ParseChannel(req.Channel)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Channel must be email, linkedin or whatsapp"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		lead, err := leads.Get(ctx, orgID, req.LeadID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}

		profile, err := profiles.GetByOrg(ctx, orgID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load profile"})
		}
		if profile == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Company profile not found"})
		}

		customContext := ""
		if req.CustomContext != nil {
			customContext = strings.TrimSpace(*req.CustomContext)
		}

		result, err := aiClient.GenerateOutreach(ctx, profile, lead, channel, customContext)
		if err != nil {
			if errors.Is(err, ai.ErrUpstream) {
				return c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "Generation backend unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Generation failed"})
		}

		message, err := messages.CreateDraft(ctx, orgID, lead.ID, string(channel), result.Subject, result.Body, result.PersonalizationData)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to store draft"})
		}

		_ = usage.AddGeneration(ctx, orgID, result.TokensUsed)
		userID := auth.UserID(c)
		_ = activity.Record(ctx, orgID, &userID, "ai.message_generated", "message", message.ID,
			map[string]interface{}{"lead_id": lead.ID, "channel": string(channel), "tokens": result.TokensUsed})

		return c.JSON(http.StatusOK, models.GenerateMessageResponse{
			MessageID:           message.ID,
			Subject:             result.Subject,
			Body:                result.Body,
			TokensUsed:          result.TokensUsed,
			PersonalizationData: result.PersonalizationData,
		})
	}
}

// ScoreLeadHandler rescores a lead deterministically
// @Summary Score lead
// @Description Recomputes the deterministic lead score and persists it
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.ScoreLeadRequest true "Scoring payload"
// @Success 200 {object} models.ScoreLeadResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/ai/score-lead [post]
func ScoreLeadHandler(leads *database.LeadService, activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ScoreLeadRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		lead, err := leads.Get(ctx, orgID, req.LeadID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}

		result := ai.ScoreLead(lead)
		if err := leads.UpdateScore(ctx, orgID, lead.ID, result.Score, result.Breakdown); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to persist score"})
		}

		userID := auth.UserID(c)
		_ = activity.Record(ctx, orgID, &userID, "lead.scored", "lead", lead.ID,
			map[string]interface{}{"score": result.Score})

		return c.JSON(http.StatusOK, models.ScoreLeadResponse{
			Score:     result.Score,
			Breakdown: result.Breakdown,
			Reasons:   result.Reasons,
		})
	}
}

// AnalyzeResponseHandler analyzes a prospect reply
// @Summary Analyze reply
// @Description Classifies the sentiment and intent of a prospect reply
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.AnalyzeResponseRequest true "Analysis payload"
// @Success 200 {object} models.AnalyzeResponseResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/ai/analyze-response [post]
func AnalyzeResponseHandler(aiClient *ai.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		if aiClient == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "AI analysis is not configured"})
		}

		var req models.AnalyzeResponseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}
		if strings.TrimSpace(req.Message) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		}

		contextNote := ""
		if req.Context != nil {
			contextNote = strings.TrimSpace(*req.Context)
		}

		result, err := aiClient.AnalyzeResponse(c.Request().Context(), req.Message, contextNote)
		if err != nil {
			if errors.Is(err, ai.ErrUpstream) {
				return c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "Analysis backend unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Analysis failed"})
		}

		response := models.AnalyzeResponseResponse{
			Sentiment:      result.Sentiment,
			Intent:         result.Intent,
			InshallahScore: result.InshallahScore,
			ReplyLanguage:  utils.DetectReplyLanguage(req.Message),
		}
		if result.SuggestedAction != "" {
			response.SuggestedAction = &result.SuggestedAction
		}
		if result.Analysis != "" {
			response.Analysis = &result.Analysis
		}

		return c.JSON(http.StatusOK, response)
	}
}
