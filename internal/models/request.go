package models

import "time"

// Service request types and statuses.
const (
	RequestTowels      = "towels"
	RequestCleaning    = "cleaning"
	RequestMaintenance = "maintenance"
	RequestAmenities   = "amenities"

	RequestPending    = "pending"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
)

// ServiceRequest is a guest-facing ticket (towels, extra cleaning, etc.).
type ServiceRequest struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	RoomNumber  string    `json:"room_number"`
	Type        string    `json:"type"`   // towels | cleaning | maintenance | amenities
	Status      string    `json:"status"` // pending | in_progress | completed
	Description string    `json:"description,omitempty"`
	GuestName   string    `json:"guest_name,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
