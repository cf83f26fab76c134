package handlers

import (
	"net/http"
	"strings"

	"faris/internal/auth"
	"faris/internal/database"
	"faris/internal/models"
	"faris/internal/utils"

	"github.com/labstack/echo/v4"
)

func userResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		OrgID:     user.OrgID,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// RegisterHandler provisions a new organization with its owner account
// @Summary Register
// @Description Create a new organization and owner account, returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(orgs *database.OrgService, authManager *auth.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "A valid email is required"})
		}
		if len(req.Password) < 8 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Password must be at least 8 characters"})
		}
		if strings.TrimSpace(req.CompanyName) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Company name is required"})
		}

		ctx := c.Request().Context()

		existing, err := orgs.GetUserByEmail(ctx, req.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check existing account"})
		}
		if existing != nil {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "An account with this email already exists"})
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process password"})
		}

		user, err := orgs.Register(ctx, req.CompanyName, utils.Slugify(req.CompanyName), req.Email, passwordHash, req.Name)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create account"})
		}

		token, err := authManager.CreateToken(user.ID, user.OrgID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to issue token"})
		}

		return c.JSON(http.StatusCreated, models.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   authManager.ExpirySeconds(),
			User:        userResponse(user),
		})
	}
}

// LoginHandler authenticates a user by email and password
// @Summary Login
// @Description Authenticate with email and password, returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login payload"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(orgs *database.OrgService, authManager *auth.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		}

		ctx := c.Request().Context()

		user, err := orgs.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to look up account"})
		}
		if user == nil || user.PasswordHash == nil || !auth.VerifyPassword(req.Password, *user.PasswordHash) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		}

		token, err := authManager.CreateToken(user.ID, user.OrgID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to issue token"})
		}

		// Best effort, login still succeeds if the stamp fails
		_ = orgs.TouchLastLogin(ctx, user.ID)

		return c.JSON(http.StatusOK, models.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   authManager.ExpirySeconds(),
			User:        userResponse(user),
		})
	}
}

// MeHandler returns the authenticated user
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/me [get]
func MeHandler(orgs *database.OrgService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := orgs.GetUserByID(c.Request().Context(), auth.UserID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to look up account"})
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Account no longer exists"})
		}
		return c.JSON(http.StatusOK, userResponse(user))
	}
}
