package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strings"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// csvColumns maps accepted header names to lead fields
var csvColumns = map[string]string{
	"company_name":   "company_name",
	"company":        "company_name",
	"contact_name":   "contact_name",
	"contact":        "contact_name",
	"contact_title":  "contact_title",
	"email":          "email",
	"phone":          "phone",
	"website":        "website",
	"industry":       "industry",
	"linkedin_url":   "linkedin_url",
	"linkedin":       "linkedin_url",
	"funding_amount": "funding_amount",
	"funding":        "funding_amount",
	"funding_stage":  "funding_stage",
	"employee_count": "employee_count",
	"location":       "location",
}

// ImportLeadsHandler imports leads from an uploaded CSV file
// @Summary Import leads from CSV
// @Description Imports leads from a CSV upload, skipping rows whose company name already exists
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/leads/import [post]
func ImportLeadsHandler(leads *database.LeadService, usage *database.UsageService, activity *database.ActivityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "A CSV file upload named 'file' is required"})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to open uploaded file"})
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		header, err := reader.Read()
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "CSV file is empty or unreadable"})
		}

		// Column index to lead field, unknown headers are ignored
		fields := make(map[int]string, len(header))
		for i, name := range header {
			name = strings.TrimPrefix(name, "\ufeff") // Excel BOM
			name = strings.ToLower(strings.TrimSpace(name))
			if field, ok := csvColumns[name]; ok {
				fields[i] = field
			}
		}
		hasCompany := false
		for _, field := range fields {
			if field == "company_name" {
				hasCompany = true
			}
		}
		if !hasCompany {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "CSV must have a company_name column"})
		}

		ctx := c.Request().Context()
		orgID := auth.OrgID(c)
		result := models.ImportResult{}

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				result.Skipped++
				continue
			}

			row := map[string]string{}
			for i, field := range fields {
				if i < len(record) {
					if v := strings.TrimSpace(record[i]); v != "" {
						row[field] = v
					}
				}
			}

			companyName := row["company_name"]
			if companyName == "" {
				result.Skipped++
				continue
			}

			exists, err := leads.ExistsByCompanyName(ctx, orgID, companyName)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Import failed mid-file"})
			}
			if exists {
				result.Skipped++
				continue
			}

			req := models.LeadCreateRequest{
				CompanyName:   companyName,
				ContactName:   optional(row, "contact_name"),
				ContactTitle:  optional(row, "contact_title"),
				Email:         optional(row, "email"),
				Phone:         optional(row, "phone"),
				Website:       optional(row, "website"),
				Industry:      optional(row, "industry"),
				LinkedInURL:   optional(row, "linkedin_url"),
				FundingAmount: optional(row, "funding_amount"),
				FundingStage:  optional(row, "funding_stage"),
				EmployeeCount: optional(row, "employee_count"),
				Location:      optional(row, "location"),
			}
			if _, err := leads.Create(ctx, orgID, &req); err != nil {
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Import failed mid-file"})
			}
			result.Imported++
		}

		if result.Imported > 0 {
			_ = usage.AddLeadsImported(ctx, orgID, result.Imported)
			userID := auth.UserID(c)
			_ = activity.Record(ctx, orgID, &userID, "leads.imported", "lead", "",
				map[string]interface{}{"imported": result.Imported, "skipped": result.Skipped})
		}

		return c.JSON(http.StatusOK, result)
	}
}

func optional(row map[string]string, key string) *string {
	if v, ok := row[key]; ok {
		return &v
	}
	return nil
}
