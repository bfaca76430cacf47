package seed

import (
	"fmt"

	"school-cms/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// ReseedStats summarizes a completed full reseed
type ReseedStats struct {
	Pages    int
	Sections int
}

// Reseed wholesale-replaces the page tree and its content sections inside
// a single transaction: delete sections, delete pages, reinsert
// everything. Any failure rolls the whole run back, so the store is never
// left partially populated. Running it twice yields identical counts.
//
// Events, staff and users are untouched; they live in the same database
// but are managed through their own endpoints.
func Reseed(db *sqlx.DB, site Site) (ReseedStats, error) {
	log := logger.Get().WithComponent("seed")
	var stats ReseedStats

	if err := validate(site); err != nil {
		return stats, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return stats, fmt.Errorf("begin reseed transaction: %w", err)
	}
	defer tx.Rollback()

	// Sections reference pages, so they go first
	if _, err := tx.Exec("DELETE FROM content_sections"); err != nil {
		return stats, fmt.Errorf("clear content sections: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pages"); err != nil {
		return stats, fmt.Errorf("clear pages: %w", err)
	}

	for _, p := range site.Pages {
		var parentID interface{}
		if p.ParentID != "" {
			parentID = p.ParentID
		}
		if _, err := tx.Exec(`
			INSERT INTO pages (id, name, path, parent_id, position, is_active, show_in_menu)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Path, parentID, p.Position, p.IsActive, p.ShowInMenu); err != nil {
			return stats, fmt.Errorf("insert page %q: %w", p.ID, err)
		}
		stats.Pages++

		for _, s := range p.Sections {
			if _, err := tx.Exec(`
				INSERT INTO content_sections (id, type, label, content, page_id, position)
				VALUES (?, ?, ?, ?, ?, ?)
			`, s.ID, s.Type, s.Label, s.Content, p.ID, s.Position); err != nil {
				return stats, fmt.Errorf("insert section %q: %w", s.ID, err)
			}
			stats.Sections++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("commit reseed transaction: %w", err)
	}

	log.Info("Reseed completed",
		logger.Int("pages", stats.Pages),
		logger.Int("sections", stats.Sections),
	)
	return stats, nil
}

// validate checks the definition before touching storage: unique page and
// section ids, and every parent declared before its children, which keeps
// the tree acyclic by construction.
func validate(site Site) error {
	pageIDs := make(map[string]bool, len(site.Pages))
	sectionIDs := make(map[string]bool)

	for _, p := range site.Pages {
		if p.ID == "" {
			return fmt.Errorf("page with empty id")
		}
		if pageIDs[p.ID] {
			return fmt.Errorf("duplicate page id %q", p.ID)
		}
		if p.ParentID != "" && !pageIDs[p.ParentID] {
			return fmt.Errorf("page %q references parent %q before it is declared", p.ID, p.ParentID)
		}
		pageIDs[p.ID] = true

		for _, s := range p.Sections {
			if s.ID == "" {
				return fmt.Errorf("page %q has a section with empty id", p.ID)
			}
			if sectionIDs[s.ID] {
				return fmt.Errorf("duplicate section id %q", s.ID)
			}
			sectionIDs[s.ID] = true
		}
	}
	return nil
}
