package content

import (
	"database/sql"
	"net/http"

	"school-cms/config"
	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"
	"school-cms/utils"

	"github.com/labstack/echo/v4"
)

// GetPageSectionsHandler returns the active sections of a page ordered by
// position. Public: the site front end renders pages from this.
func GetPageSectionsHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("content")
	pageID := c.Param("page_id")

	sections := []Section{}
	err := config.DB.Select(&sections, `
		SELECT id, type, label, content, page_id, position, is_active, created_at, updated_at
		FROM content_sections
		WHERE page_id = ? AND is_active = 1
		ORDER BY position ASC
	`, pageID)
	if err != nil {
		log.Error("Failed to list page sections", err, logger.PageID(pageID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"sections": sections})
}

// GetSectionHandler fetches one section by id
func GetSectionHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("content")
	id := c.Param("id")

	var s Section
	err := config.DB.Get(&s, `
		SELECT id, type, label, content, page_id, position, is_active, created_at, updated_at
		FROM content_sections WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeSectionNotFound,
				"Content section not found.",
			))
		}
		log.Error("Failed to fetch section", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, s)
}

// CreateSectionHandler inserts a new content section. A duplicate id is a
// 409 Conflict, which keeps re-runs of the incremental seeding procedure
// idempotent per-id. Requires authentication.
func CreateSectionHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("content")

	req := new(CreateSectionRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.ID == "" || req.Type == "" || req.Label == "" || req.PageID == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Fields id, type, label and page_id are required.",
		))
	}
	if !SectionTypes[req.Type] {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidType,
			"Invalid section type. Must be one of: text, image, list.",
		))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err := config.DB.Exec(`
		INSERT INTO content_sections (id, type, label, content, page_id, position, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.ID, req.Type, req.Label, req.Content, req.PageID, req.Position, isActive)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return apperrors.RespondWithError(c, apperrors.NewConflict(
				apperrors.ErrCodeResourceExists,
				"A content section with this id already exists.",
			))
		}
		log.Error("Failed to insert section", err, logger.SectionID(req.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Content section created", logger.SectionID(req.ID), logger.PageID(req.PageID))

	var s Section
	if err := config.DB.Get(&s, `
		SELECT id, type, label, content, page_id, position, is_active, created_at, updated_at
		FROM content_sections WHERE id = ?
	`, req.ID); err != nil {
		log.Error("Failed to fetch created section", err, logger.SectionID(req.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateSectionHandler edits a section in place. Requires authentication.
func UpdateSectionHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("content")
	id := c.Param("id")

	var existing Section
	err := config.DB.Get(&existing, `
		SELECT id, type, label, content, page_id, position, is_active, created_at, updated_at
		FROM content_sections WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeSectionNotFound,
				"Content section not found.",
			))
		}
		log.Error("Failed to fetch section for update", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	req := new(UpdateSectionRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Type == "" {
		req.Type = existing.Type
	}
	if !SectionTypes[req.Type] {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidType,
			"Invalid section type. Must be one of: text, image, list.",
		))
	}
	if req.Label == "" {
		req.Label = existing.Label
	}

	content := existing.Content
	if req.Content != nil {
		content = *req.Content
	}
	position := existing.Position
	if req.Position != nil {
		position = *req.Position
	}
	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err = config.DB.Exec(`
		UPDATE content_sections
		SET type = ?, label = ?, content = ?, position = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, req.Type, req.Label, content, position, isActive, id)
	if err != nil {
		log.Error("Failed to update section", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Content section updated", logger.SectionID(id))

	var s Section
	if err := config.DB.Get(&s, `
		SELECT id, type, label, content, page_id, position, is_active, created_at, updated_at
		FROM content_sections WHERE id = ?
	`, id); err != nil {
		log.Error("Failed to fetch updated section", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteSectionHandler removes a section. Requires authentication.
func DeleteSectionHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("content")
	id := c.Param("id")

	var exists int
	err := config.DB.Get(&exists, "SELECT 1 FROM content_sections WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeSectionNotFound,
				"Content section not found.",
			))
		}
		log.Error("Failed to fetch section for delete", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if _, err := config.DB.Exec("DELETE FROM content_sections WHERE id = ?", id); err != nil {
		log.Error("Failed to delete section", err, logger.SectionID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Content section deleted", logger.SectionID(id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Content section deleted successfully."})
}
