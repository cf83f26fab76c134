package handlers

import (
	"net/http"

	"faris/internal/ai"
	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// GetProfileHandler returns the organization's company profile
// @Summary Get company profile
// @Description Returns the sales identity used for AI message generation
// @Tags profile
// @Produce json
// @Success 200 {object} models.CompanyProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /api/profile [get]
func GetProfileHandler(profiles *database.ProfileService) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := profiles.GetByOrg(c.Request().Context(), auth.OrgID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load profile"})
		}
		if profile == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
		}
		return c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler applies a partial update to the company profile
// @Summary Update company profile
// @Description Applies non-null fields to the company profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.CompanyProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/profile [put]
func UpdateProfileHandler(profiles *database.ProfileService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ProfileUpdateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		if req.Tone != nil {
			if _, err := ai.ParseTone(*req.Tone); err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown tone"})
			}
		}
		if req.Language != nil {
			if _, err := ai.ParseLanguage(*req.Language); err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown language"})
			}
		}

		profile, err := profiles.Update(c.Request().Context(), auth.OrgID(c), &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update profile"})
		}
		if profile == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
		}
		return c.JSON(http.StatusOK, profile)
	}
}
