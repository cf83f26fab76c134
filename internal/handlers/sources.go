package handlers

import (
	"net/http"
	"strings"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// ListIndustrySourcesHandler returns the curated industry source catalog
// @Summary List industry sources
// @Description Returns the shared catalog of curated lead sources
// @Tags sources
// @Produce json
// @Success 200 {array} models.IndustrySource
// @Router /api/sources/industries [get]
func ListIndustrySourcesHandler(sources *database.SourceService) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := sources.ListIndustrySources(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list industry sources"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// ListDataSourcesHandler returns the organization's data sources
// @Summary List data sources
// @Tags sources
// @Produce json
// @Success 200 {array} models.DataSource
// @Router /api/sources [get]
func ListDataSourcesHandler(sources *database.SourceService) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := sources.ListDataSources(c.Request().Context(), auth.OrgID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list data sources"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// CreateDataSourceHandler creates a custom data source
// @Summary Create data source
// @Tags sources
// @Accept json
// @Produce json
// @Param request body models.DataSourceCreateRequest true "Data source payload"
// @Success 201 {object} models.DataSource
// @Failure 400 {object} models.ErrorResponse
// @Router /api/sources [post]
func CreateDataSourceHandler(sources *database.SourceService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.DataSourceCreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.SourceType) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Name and source_type are required"})
		}

		source, err := sources.CreateDataSource(c.Request().Context(), auth.OrgID(c), &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create data source"})
		}
		return c.JSON(http.StatusCreated, source)
	}
}

// EnableIndustrySourceHandler copies a curated source into the tenant's sources
// @Summary Enable industry source
// @Description Enables a curated industry source for the organization
// @Tags sources
// @Produce json
// @Param id path string true "Industry source id"
// @Success 201 {object} models.DataSource
// @Failure 404 {object} models.ErrorResponse
// @Router /api/sources/industries/{id}/enable [post]
func EnableIndustrySourceHandler(sources *database.SourceService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		industrySource, err := sources.GetIndustrySource(ctx, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load industry source"})
		}
		if industrySource == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Industry source not found"})
		}

		source, err := sources.EnableIndustrySource(ctx, auth.OrgID(c), industrySource)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to enable industry source"})
		}
		return c.JSON(http.StatusCreated, source)
	}
}
