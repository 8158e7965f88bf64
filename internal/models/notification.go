package models

import "time"

// Staff roles used for notification routing and access control.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleFrontDesk    = "front_desk"
	RoleHousekeeping = "housekeeping"
	RoleMaintenance  = "maintenance"
)

// Notification types.
const (
	NotifyRequest       = "request"
	NotifyCheckIn       = "checkin"
	NotifyCheckOut      = "checkout"
	NotifyMaintenance   = "maintenance"
	NotifyCleaningDelay = "cleaning_delay"
	NotifySystem        = "system"
)

// Notification is an append-only record routed to staff by role within a property.
type Notification struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"property_id"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	RecipientRoles []string   `json:"recipient_roles"`
	RelatedID      string     `json:"related_id,omitempty"` // room or request the notification points at
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
