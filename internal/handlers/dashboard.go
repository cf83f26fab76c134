package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"faris/internal/auth"
	"faris/internal/cache"
	"faris/internal/database"
	"faris/internal/models"
	"faris/internal/utils"

	"github.com/labstack/echo/v4"
)

// DashboardStatsHandler returns cached tenant-wide stats
// @Summary Dashboard stats
// @Description Returns aggregate outreach numbers, cached per organization
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/dashboard/stats [get]
func DashboardStatsHandler(dashboard *database.DashboardService, statsCache *cache.Cache, cacheTTLMinutes int) echo.HandlerFunc {
	return func(c echo.Context) error {
		orgID := auth.OrgID(c)
		cacheKey := "stats:" + orgID

		if cached, found := statsCache.Get(cacheKey); found {
			if stats, ok := cached.(*models.DashboardStats); ok {
				return c.JSON(http.StatusOK, stats)
			}
		}

		stats, err := dashboard.Stats(c.Request().Context(), orgID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		}

		// Industry labels come nearly raw from imports, normalize for display
		normalized := make(map[string]int, len(stats.LeadsByIndustry))
		for industry, count := range stats.LeadsByIndustry {
			normalized[utils.TitleCase(industry)] += count
		}
		stats.LeadsByIndustry = normalized

		statsCache.Set(cacheKey, stats, time.Duration(cacheTTLMinutes)*time.Minute)
		return c.JSON(http.StatusOK, stats)
	}
}

// DashboardActivityHandler returns recent audit entries
// @Summary Recent activity
// @Description Returns the newest activity log entries for the organization
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} models.ActivityItem
// @Router /api/dashboard/activity [get]
func DashboardActivityHandler(activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))

		entries, err := activity.Recent(c.Request().Context(), auth.OrgID(c), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load activity"})
		}

		items := make([]models.ActivityItem, 0, len(entries))
		for _, entry := range entries {
			item := models.ActivityItem{
				ID:         entry.ID,
				Action:     entry.Action,
				EntityType: entry.EntityType,
				EntityID:   entry.EntityID,
				CreatedAt:  entry.CreatedAt.Format("2006-01-02T15:04:05Z"),
			}
			if len(entry.Details) > 0 {
				_ = json.Unmarshal(entry.Details, &item.Details)
			}
			items = append(items, item)
		}
		return c.JSON(http.StatusOK, items)
	}
}
