package content

import (
	"strings"
	"time"
)

// Section types. A list section's content is a serialized JSON array of
// strings.
const (
	TypeText  = "text"
	TypeImage = "image"
	TypeList  = "list"
)

// SectionTypes is the set of valid section types
var SectionTypes = map[string]bool{
	TypeText:  true,
	TypeImage: true,
	TypeList:  true,
}

// GlobalPageID is the sentinel page id for header/footer content shared
// across pages.
const GlobalPageID = "global"

// Section is a single localized, typed piece of editable content bound to
// a page. The id carries the locale by convention: <slug>_<locale>, e.g.
// "hero-title_en". The _en/_bg pair sharing a base slug is the same
// logical field in the two language editions.
type Section struct {
	ID        string    `db:"id" json:"id"`
	Type      string    `db:"type" json:"type"`
	Label     string    `db:"label" json:"label"`
	Content   string    `db:"content" json:"content"`
	PageID    string    `db:"page_id" json:"page_id"`
	Position  int       `db:"position" json:"position"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Locale extracts the locale suffix from the section id, or "" when the
// id does not follow the <slug>_<locale> convention.
func (s *Section) Locale() string {
	idx := strings.LastIndex(s.ID, "_")
	if idx < 0 {
		return ""
	}
	suffix := s.ID[idx+1:]
	if suffix == "en" || suffix == "bg" {
		return suffix
	}
	return ""
}

// CreateSectionRequest is the payload for POST /content
type CreateSectionRequest struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Content  string `json:"content"`
	PageID   string `json:"page_id"`
	Position int    `json:"position"`
	IsActive *bool  `json:"is_active"`
}

// UpdateSectionRequest is the payload for PUT /content/:id. The id and
// page binding are fixed at creation; everything else is editable, and
// omitted fields keep their stored values.
type UpdateSectionRequest struct {
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Content  *string `json:"content"`
	Position *int    `json:"position"`
	IsActive *bool   `json:"is_active"`
}
