package handlers

import (
	"net/http"
	"strings"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

var knownIntegrationTypes = map[string]bool{
	"sendgrid": true,
	"smtp":     true,
	"whatsapp": true,
	"linkedin": true,
	"hubspot":  true,
	"webhook":  true,
}

// ListIntegrationsHandler returns the organization's integrations
// @Summary List integrations
// @Tags integrations
// @Produce json
// @Success 200 {array} models.Integration
// @Router /api/integrations [get]
func ListIntegrationsHandler(integrations *database.IntegrationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := integrations.List(c.Request().Context(), auth.OrgID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list integrations"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// CreateIntegrationHandler connects an integration for the organization
// @Summary Connect integration
// @Description Connects a delivery or CRM integration, one per type per organization
// @Tags integrations
// @Accept json
// @Produce json
// @Param request body models.IntegrationCreateRequest true "Integration payload"
// @Success 201 {object} models.Integration
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/integrations [post]
func CreateIntegrationHandler(integrations *database.IntegrationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.IntegrationCreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		req.Type = strings.ToLower(strings.TrimSpace(req.Type))
		if !knownIntegrationTypes[req.Type] {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown integration type"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		exists, err := integrations.ExistsByType(ctx, orgID, req.Type)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check integration"})
		}
		if exists {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Integration of this type already connected"})
		}

		integration, err := integrations.Create(ctx, orgID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create integration"})
		}
		return c.JSON(http.StatusCreated, integration)
	}
}

// DeleteIntegrationHandler disconnects an integration
// @Summary Disconnect integration
// @Tags integrations
// @Param id path string true "Integration id"
// @Success 204
// @Router /api/integrations/{id} [delete]
func DeleteIntegrationHandler(integrations *database.IntegrationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := integrations.Delete(c.Request().Context(), auth.OrgID(c), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete integration"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
