package handlers

import (
	"net/http"
	"strings"

	"faris/internal/ai"
	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// ListCampaignsHandler returns the organization's campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Router /api/campaigns [get]
func ListCampaignsHandler(campaigns *database.CampaignService) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := campaigns.List(c.Request().Context(), auth.OrgID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list campaigns"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// GetCampaignHandler returns a single campaign
// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign id"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} models.ErrorResponse
// @Router /api/campaigns/{id} [get]
func GetCampaignHandler(campaigns *database.CampaignService) echo.HandlerFunc {
	return func(c echo.Context) error {
		campaign, err := campaigns.Get(c.Request().Context(), auth.OrgID(c), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load campaign"})
		}
		if campaign == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Campaign not found"})
		}
		return c.JSON(http.StatusOK, campaign)
	}
}

// CreateCampaignHandler creates a draft campaign
// @Summary Create campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CampaignCreateRequest true "Campaign payload"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} models.ErrorResponse
// @Router /api/campaigns [post]
func CreateCampaignHandler(campaigns *database.CampaignService, activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CampaignCreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}
		if strings.TrimSpace(req.Name) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Campaign name is required"})
		}
		for _, channel := range req.Channels {
			if _, err := ai.ParseChannel(channel); err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown channel: " + channel})
			}
		}
		if req.MinScore < 0 || req.MinScore > 10 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "min_score must be between 0 and 10"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		campaign, err := campaigns.Create(ctx, orgID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create campaign"})
		}

		userID := auth.UserID(c)
		_ = activity.Record(ctx, orgID, &userID, "campaign.created", "campaign", campaign.ID,
			map[string]interface{}{"name": campaign.Name})

		return c.JSON(http.StatusCreated, campaign)
	}
}

// StartCampaignHandler activates a campaign
// @Summary Start campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign id"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} models.ErrorResponse
// @Router /api/campaigns/{id}/start [post]
func StartCampaignHandler(campaigns *database.CampaignService) echo.HandlerFunc {
	return campaignStatusHandler(campaigns, "start")
}

// PauseCampaignHandler pauses a campaign
// @Summary Pause campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign id"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} models.ErrorResponse
// @Router /api/campaigns/{id}/pause [post]
func PauseCampaignHandler(campaigns *database.CampaignService) echo.HandlerFunc {
	return campaignStatusHandler(campaigns, "pause")
}

func campaignStatusHandler(campaigns *database.CampaignService, action string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orgID := auth.OrgID(c)
		campaignID := c.Param("id")

		var ok bool
		var err error
		if action == "start" {
			ok, err = campaigns.Start(ctx, orgID, campaignID)
		} else {
			ok, err = campaigns.Pause(ctx, orgID, campaignID)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update campaign"})
		}
		if !ok {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Campaign not found"})
		}

		campaign, err := campaigns.Get(ctx, orgID, campaignID)
		if err != nil || campaign == nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load campaign"})
		}
		return c.JSON(http.StatusOK, campaign)
	}
}
