package page

import "time"

// Page is a node in the site's navigation hierarchy. ParentID is nil for
// top-level pages; the set of pages forms a forest. The id doubles as the
// URL slug and as the foreign key used by content sections.
type Page struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Path       string    `db:"path" json:"path"`
	ParentID   *string   `db:"parent_id" json:"parent_id"`
	Position   int       `db:"position" json:"position"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	ShowInMenu bool      `db:"show_in_menu" json:"show_in_menu"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// PageNode is a page with its children, for the nested tree response
type PageNode struct {
	Page
	Children []*PageNode `json:"children"`
}

// PageRequest is the payload for create and update
type PageRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Path       string  `json:"path"`
	ParentID   *string `json:"parent_id"`
	Position   int     `json:"position"`
	IsActive   *bool   `json:"is_active"`
	ShowInMenu *bool   `json:"show_in_menu"`
}

// BuildTree nests a flat, (parent_id, position)-ordered page list into a
// forest. Pages referencing a parent missing from the list are attached at
// the top level rather than dropped.
func BuildTree(pages []Page) []*PageNode {
	nodes := make(map[string]*PageNode, len(pages))
	for i := range pages {
		nodes[pages[i].ID] = &PageNode{Page: pages[i], Children: []*PageNode{}}
	}

	var roots []*PageNode
	for i := range pages {
		node := nodes[pages[i].ID]
		if pages[i].ParentID != nil {
			if parent, ok := nodes[*pages[i].ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
