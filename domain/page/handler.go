package page

import (
	"database/sql"
	"net/http"

	"school-cms/config"
	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"
	"school-cms/utils"

	"github.com/labstack/echo/v4"
)

// ListPagesHandler returns the flat page list ordered for menu rendering
func ListPagesHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")

	pages := []Page{}
	err := config.DB.Select(&pages, `
		SELECT id, name, path, parent_id, position, is_active, show_in_menu, created_at, updated_at
		FROM pages
		ORDER BY parent_id, position
	`)
	if err != nil {
		log.Error("Failed to list pages", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"pages": pages})
}

// GetPageTreeHandler returns the nested navigation tree
func GetPageTreeHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")

	pages := []Page{}
	err := config.DB.Select(&pages, `
		SELECT id, name, path, parent_id, position, is_active, show_in_menu, created_at, updated_at
		FROM pages
		ORDER BY parent_id, position
	`)
	if err != nil {
		log.Error("Failed to fetch pages for tree", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	tree := BuildTree(pages)
	if tree == nil {
		tree = []*PageNode{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"pages": tree})
}

// GetPageHandler fetches a single page by id
func GetPageHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")
	id := c.Param("id")

	var p Page
	err := config.DB.Get(&p, `
		SELECT id, name, path, parent_id, position, is_active, show_in_menu, created_at, updated_at
		FROM pages WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodePageNotFound,
				"Page not found.",
			))
		}
		log.Error("Failed to fetch page", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, p)
}

// CreatePageHandler inserts a new page. The parent, when given, must exist
// already, which rules out cycles on insert. Requires authentication.
func CreatePageHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")

	req := new(PageRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.ID == "" || req.Name == "" || req.Path == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Fields id, name and path are required.",
		))
	}

	if req.ParentID != nil {
		if *req.ParentID == req.ID {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeInvalidParent,
				"A page cannot be its own parent.",
			))
		}
		if err := checkParentExists(*req.ParentID); err != nil {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeInvalidParent,
				"Parent page does not exist.",
			))
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	showInMenu := true
	if req.ShowInMenu != nil {
		showInMenu = *req.ShowInMenu
	}

	_, err := config.DB.Exec(`
		INSERT INTO pages (id, name, path, parent_id, position, is_active, show_in_menu)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.ID, req.Name, req.Path, req.ParentID, req.Position, isActive, showInMenu)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return apperrors.RespondWithError(c, apperrors.NewConflict(
				apperrors.ErrCodeResourceExists,
				"A page with this id already exists.",
			))
		}
		log.Error("Failed to insert page", err, logger.PageID(req.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Page created", logger.PageID(req.ID))
	var p Page
	if err := config.DB.Get(&p, `
		SELECT id, name, path, parent_id, position, is_active, show_in_menu, created_at, updated_at
		FROM pages WHERE id = ?
	`, req.ID); err != nil {
		log.Error("Failed to fetch created page", err, logger.PageID(req.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdatePageHandler updates a page in place. Re-parenting is validated
// against the ancestor chain so the forest stays acyclic. Requires
// authentication.
func UpdatePageHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")
	id := c.Param("id")

	var existing Page
	err := config.DB.Get(&existing, "SELECT id FROM pages WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodePageNotFound,
				"Page not found.",
			))
		}
		log.Error("Failed to fetch page for update", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	req := new(PageRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Name == "" || req.Path == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Fields name and path are required.",
		))
	}

	if req.ParentID != nil {
		if err := checkParentExists(*req.ParentID); err != nil {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeInvalidParent,
				"Parent page does not exist.",
			))
		}
		cycle, err := wouldCreateCycle(id, *req.ParentID)
		if err != nil {
			log.Error("Failed to check page ancestry", err, logger.PageID(id))
			return apperrors.RespondWithError(c, apperrors.NewInternal(
				apperrors.ErrCodeDatabaseError,
				"Internal server error.",
				err,
			))
		}
		if cycle {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeInvalidParent,
				"Re-parenting would create a cycle in the page tree.",
			))
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	showInMenu := true
	if req.ShowInMenu != nil {
		showInMenu = *req.ShowInMenu
	}

	_, err = config.DB.Exec(`
		UPDATE pages
		SET name = ?, path = ?, parent_id = ?, position = ?, is_active = ?, show_in_menu = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, req.Name, req.Path, req.ParentID, req.Position, isActive, showInMenu, id)
	if err != nil {
		log.Error("Failed to update page", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Page updated", logger.PageID(id))
	var p Page
	if err := config.DB.Get(&p, `
		SELECT id, name, path, parent_id, position, is_active, show_in_menu, created_at, updated_at
		FROM pages WHERE id = ?
	`, id); err != nil {
		log.Error("Failed to fetch updated page", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePageHandler removes a page together with its content sections.
// Pages that still have children cannot be deleted. Requires
// authentication.
func DeletePageHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("page")
	id := c.Param("id")

	var exists int
	err := config.DB.Get(&exists, "SELECT 1 FROM pages WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodePageNotFound,
				"Page not found.",
			))
		}
		log.Error("Failed to fetch page for delete", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	var childCount int
	if err := config.DB.Get(&childCount, "SELECT COUNT(*) FROM pages WHERE parent_id = ?", id); err != nil {
		log.Error("Failed to count child pages", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if childCount > 0 {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Page has child pages. Delete or re-parent them first.",
		))
	}

	tx, err := config.DB.Beginx()
	if err != nil {
		log.Error("Failed to begin delete transaction", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM content_sections WHERE page_id = ?", id); err != nil {
		log.Error("Failed to delete page sections", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if _, err := tx.Exec("DELETE FROM pages WHERE id = ?", id); err != nil {
		log.Error("Failed to delete page", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit page delete", err, logger.PageID(id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Page deleted", logger.PageID(id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Page deleted successfully."})
}

func checkParentExists(parentID string) error {
	var exists int
	return config.DB.Get(&exists, "SELECT 1 FROM pages WHERE id = ?", parentID)
}

// wouldCreateCycle walks the ancestor chain from newParentID looking for
// pageID. The walk is bounded in case existing data already contains a
// loop.
func wouldCreateCycle(pageID, newParentID string) (bool, error) {
	current := newParentID
	for depth := 0; depth < 64; depth++ {
		if current == pageID {
			return true, nil
		}
		var parent sql.NullString
		err := config.DB.Get(&parent, "SELECT parent_id FROM pages WHERE id = ?", current)
		if err != nil {
			if err == sql.ErrNoRows {
				return false, nil
			}
			return false, err
		}
		if !parent.Valid {
			return false, nil
		}
		current = parent.String
	}
	return true, nil
}
