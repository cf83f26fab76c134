package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// ListLeadsHandler returns a filtered page of leads
// @Summary List leads
// @Description Returns a paginated, filtered list of the organization's leads
// @Tags leads
// @Produce json
// @Param status query string false "Filter by status"
// @Param industry query string false "Filter by industry"
// @Param min_score query int false "Minimum score"
// @Param search query string false "Match company or contact name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} models.LeadListResponse
// @Router /api/leads [get]
func ListLeadsHandler(leads *database.LeadService) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := database.LeadFilter{
			Status:   c.QueryParam("status"),
			Industry: c.QueryParam("industry"),
			Search:   strings.TrimSpace(c.QueryParam("search")),
		}
		if v := c.QueryParam("min_score"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.MinScore = &n
			}
		}
		filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
		filter.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
		if filter.Page < 1 {
			filter.Page = 1
		}
		if filter.PageSize < 1 || filter.PageSize > 100 {
			filter.PageSize = 20
		}

		result, total, err := leads.List(c.Request().Context(), auth.OrgID(c), filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list leads"})
		}

		totalPages := (total + filter.PageSize - 1) / filter.PageSize
		return c.JSON(http.StatusOK, models.LeadListResponse{
			Leads:      result,
			Total:      total,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: totalPages,
		})
	}
}

// GetLeadHandler returns a single lead
// @Summary Get lead
// @Tags leads
// @Produce json
// @Param id path string true "Lead id"
// @Success 200 {object} models.Lead
// @Failure 404 {object} models.ErrorResponse
// @Router /api/leads/{id} [get]
func GetLeadHandler(leads *database.LeadService) echo.HandlerFunc {
	return func(c echo.Context) error {
		lead, err := leads.Get(c.Request().Context(), auth.OrgID(c), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusOK, lead)
	}
}

// CreateLeadHandler creates a lead
// @Summary Create lead
// @Tags leads
// @Accept json
// @Produce json
// @Param request body models.LeadCreateRequest true "Lead payload"
// @Success 201 {object} models.Lead
// @Failure 400 {object} models.ErrorResponse
// @Router /api/leads [post]
func CreateLeadHandler(leads *database.LeadService, activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LeadCreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}
		if strings.TrimSpace(req.CompanyName) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Company name is required"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		lead, err := leads.Create(ctx, orgID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create lead"})
		}

		userID := auth.UserID(c)
		_ = activity.Record(ctx, orgID, &userID, "lead.created", "lead", lead.ID,
			map[string]interface{}{"company_name": lead.CompanyName})

		return c.JSON(http.StatusCreated, lead)
	}
}

// UpdateLeadHandler applies a partial update to a lead
// @Summary Update lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead id"
// @Param request body models.LeadUpdateRequest true "Lead fields"
// @Success 200 {object} models.Lead
// @Failure 404 {object} models.ErrorResponse
// @Router /api/leads/{id} [put]
func UpdateLeadHandler(leads *database.LeadService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LeadUpdateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		lead, err := leads.Update(c.Request().Context(), auth.OrgID(c), c.Param("id"), &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusOK, lead)
	}
}

// DeleteLeadHandler removes a lead
// @Summary Delete lead
// @Tags leads
// @Produce json
// @Param id path string true "Lead id"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/leads/{id} [delete]
func DeleteLeadHandler(leads *database.LeadService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orgID := auth.OrgID(c)
		leadID := c.Param("id")

		lead, err := leads.Get(ctx, orgID, leadID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}

		if err := leads.Delete(ctx, orgID, leadID); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete lead"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
