package auth

import (
	"database/sql"
	"net/http"

	"school-cms/config"
	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"
	"school-cms/utils"

	"github.com/labstack/echo/v4"
)

// LoginHandler exchanges editor credentials for a bearer token
func LoginHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("auth")

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("Invalid login request payload", logger.Err(err))
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Username == "" || req.Password == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Username and password are required.",
		))
	}

	var user User
	err := config.DB.Get(&user, `
		SELECT id, username, password, created_at, updated_at
		FROM users WHERE username = ?
	`, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			// Same response as a wrong password, so usernames cannot be probed
			return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
				apperrors.ErrCodeInvalidCredentials,
				"Invalid username or password.",
			))
		}
		log.Error("Failed to fetch user", err, logger.String("username", req.Username))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		log.Warn("Failed login attempt", logger.String("username", req.Username))
		return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Invalid username or password.",
		))
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		log.Error("Failed to generate token", err, logger.UserID(user.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	log.Info("User logged in", logger.UserID(user.ID))
	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// EnsureAdminUser creates the admin account if it is absent, so a fresh
// deployment can log in before any other seeding has run.
func EnsureAdminUser(username, password string) error {
	log := logger.Get().WithComponent("auth")

	var exists int
	err := config.DB.Get(&exists, "SELECT 1 FROM users WHERE username = ?", username)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := config.DB.Exec(`
		INSERT INTO users (username, password) VALUES (?, ?)
	`, username, hashed); err != nil {
		return err
	}

	log.Info("Admin user created", logger.String("username", username))
	return nil
}
