package staff

import "time"

// Member is a staff record. IsDirector partitions staff into leadership
// and general teaching staff for display grouping; Position orders members
// within their partition.
type Member struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Role       string    `db:"role" json:"role"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	Bio        string    `db:"bio" json:"bio"`
	ImageURL   string    `db:"image_url" json:"image_url"`
	IsDirector bool      `db:"is_director" json:"is_director"`
	Position   int       `db:"position" json:"position"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// MemberRequest is the payload for create and update
type MemberRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Bio        string `json:"bio"`
	ImageURL   string `json:"image_url"`
	IsDirector bool   `json:"is_director"`
	Position   int    `json:"position"`
}
