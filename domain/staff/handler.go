package staff

import (
	"database/sql"
	"net/http"
	"strconv"

	"school-cms/config"
	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"
	"school-cms/utils"

	"github.com/labstack/echo/v4"
)

// ListStaffHandler returns all staff, leadership first, each partition
// ordered by position. Public.
func ListStaffHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("staff")

	members := []Member{}
	err := config.DB.Select(&members, `
		SELECT id, name, role, email, phone, bio, image_url, is_director, position, created_at, updated_at
		FROM staff
		ORDER BY is_director DESC, position ASC
	`)
	if err != nil {
		log.Error("Failed to list staff", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"staff": members})
}

// CreateStaffHandler inserts a staff record. A duplicate email is a 409
// Conflict rather than a silent duplicate. Requires authentication.
func CreateStaffHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("staff")

	req := new(MemberRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Name == "" || req.Role == "" || req.Email == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Fields name, role and email are required.",
		))
	}

	result, err := config.DB.Exec(`
		INSERT INTO staff (name, role, email, phone, bio, image_url, is_director, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.Name, req.Role, req.Email, req.Phone, req.Bio, req.ImageURL, req.IsDirector, req.Position)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return apperrors.RespondWithError(c, apperrors.NewConflict(
				apperrors.ErrCodeResourceExists,
				"A staff member with this email already exists.",
			))
		}
		log.Error("Failed to insert staff member", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("Failed to read inserted staff id", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Staff member created", logger.StaffID(id))

	var m Member
	if err := config.DB.Get(&m, `
		SELECT id, name, role, email, phone, bio, image_url, is_director, position, created_at, updated_at
		FROM staff WHERE id = ?
	`, id); err != nil {
		log.Error("Failed to fetch created staff member", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateStaffHandler edits a staff record in place. Requires
// authentication.
func UpdateStaffHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("staff")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid staff id.",
		))
	}

	var exists int
	err = config.DB.Get(&exists, "SELECT 1 FROM staff WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeStaffNotFound,
				"Staff member not found.",
			))
		}
		log.Error("Failed to fetch staff member for update", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	req := new(MemberRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Name == "" || req.Role == "" || req.Email == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Fields name, role and email are required.",
		))
	}

	_, err = config.DB.Exec(`
		UPDATE staff
		SET name = ?, role = ?, email = ?, phone = ?, bio = ?, image_url = ?, is_director = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, req.Name, req.Role, req.Email, req.Phone, req.Bio, req.ImageURL, req.IsDirector, req.Position, id)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return apperrors.RespondWithError(c, apperrors.NewConflict(
				apperrors.ErrCodeResourceExists,
				"A staff member with this email already exists.",
			))
		}
		log.Error("Failed to update staff member", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Staff member updated", logger.StaffID(id))

	var m Member
	if err := config.DB.Get(&m, `
		SELECT id, name, role, email, phone, bio, image_url, is_director, position, created_at, updated_at
		FROM staff WHERE id = ?
	`, id); err != nil {
		log.Error("Failed to fetch updated staff member", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteStaffHandler removes a staff record. Requires authentication.
func DeleteStaffHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("staff")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid staff id.",
		))
	}

	var exists int
	err = config.DB.Get(&exists, "SELECT 1 FROM staff WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeStaffNotFound,
				"Staff member not found.",
			))
		}
		log.Error("Failed to fetch staff member for delete", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if _, err := config.DB.Exec("DELETE FROM staff WHERE id = ?", id); err != nil {
		log.Error("Failed to delete staff member", err, logger.StaffID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Staff member deleted", logger.StaffID(id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Staff member deleted successfully."})
}
