package handlers

import (
	"net/http"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/email"
	"faris/internal/models"

	"github.com/labstack/echo/v4"
)

// ListLeadMessagesHandler returns all messages for a lead
// @Summary List lead messages
// @Tags messages
// @Produce json
// @Param id path string true "Lead id"
// @Success 200 {array} models.Message
// @Failure 404 {object} models.ErrorResponse
// @Router /api/leads/{id}/messages [get]
func ListLeadMessagesHandler(leads *database.LeadService, messages *database.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		lead, err := leads.Get(ctx, orgID, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}

		result, err := messages.ListByLead(ctx, orgID, lead.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list messages"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// SendMessageHandler sends a drafted message to its lead contact
// @Summary Send message
// @Description Delivers a draft message over email via SendGrid
// @Tags messages
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} models.SendMessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.SendMessageResponse
// @Router /api/messages/{id}/send [post]
func SendMessageHandler(messages *database.MessageService, leads *database.LeadService, usage *database.UsageService, activity *database.ActivityService, emailService *email.EmailService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orgID := auth.OrgID(c)

		message, err := messages.Get(ctx, orgID, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load message"})
		}
		if message == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Message not found"})
		}
		if message.Status == "sent" {
			return c.JSON(http.StatusConflict, models.SendMessageResponse{
				Success: false,
				Status:  "sent",
				Error:   "Message already sent",
			})
		}
		if message.Channel != "email" {
			return c.JSON(http.StatusUnprocessableEntity, models.SendMessageResponse{
				Success: false,
				Status:  message.Status,
				Error:   "Only email messages can be sent directly",
			})
		}
		if !emailService.Configured() {
			return c.JSON(http.StatusServiceUnavailable, models.SendMessageResponse{
				Success: false,
				Status:  message.Status,
				Error:   "Email delivery is not configured",
			})
		}

		lead, err := leads.Get(ctx, orgID, message.LeadID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load lead"})
		}
		if lead == nil || lead.Email == nil || *lead.Email == "" {
			reason := "Lead has no email address"
			_ = messages.MarkFailed(ctx, orgID, message.ID, reason)
			return c.JSON(http.StatusUnprocessableEntity, models.SendMessageResponse{
				Success: false,
				Status:  "failed",
				Error:   reason,
			})
		}

		subject := ""
		if message.Subject != nil {
			subject = *message.Subject
		}
		contactName := lead.CompanyName
		if lead.ContactName != nil && *lead.ContactName != "" {
			contactName = *lead.ContactName
		}

		if err := emailService.SendOutreachEmail(*lead.Email, contactName, subject, message.Body); err != nil {
			_ = messages.MarkFailed(ctx, orgID, message.ID, err.Error())
			return c.JSON(http.StatusBadGateway, models.SendMessageResponse{
				Success: false,
				Status:  "failed",
				Error:   "Delivery failed",
			})
		}

		if err := messages.MarkSent(ctx, orgID, message.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Sent but failed to record status"})
		}
		_ = usage.AddMessageSent(ctx, orgID)
		userID := auth.UserID(c)
		_ = activity.Record(ctx, orgID, &userID, "message.sent", "message", message.ID,
			map[string]interface{}{"lead_id": lead.ID, "channel": message.Channel})

		return c.JSON(http.StatusOK, models.SendMessageResponse{Success: true, Status: "sent"})
	}
}
