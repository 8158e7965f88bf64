package models

// User is an authenticated account. Role corresponds to the staff roles
// (admin, manager, front_desk, housekeeping, maintenance).
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never exposed
	Role         string `json:"role"`
	PropertyID   string `json:"property_id"`
}
