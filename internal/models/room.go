package models

import "time"

// Room statuses.
const (
	StatusVacant      = "vacant"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
)

// Room types.
const (
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"
	TypeSuite    = "suite"
)

// GuestStay describes the guest currently occupying a room.
// Present iff the room status is "occupied".
type GuestStay struct {
	Name     string    `json:"name"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// MaintenanceEntry is an informational history item kept on the room itself.
// Authoritative maintenance records live in the maintenance_records table.
type MaintenanceEntry struct {
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
	Notes string    `json:"notes,omitempty"`
}

// Room is the current snapshot of a single room.
type Room struct {
	ID                 string             `json:"id"`
	PropertyID         string             `json:"property_id"`
	Number             string             `json:"number"`
	Floor              int                `json:"floor"`
	Type               string             `json:"type"`   // standard | deluxe | suite
	Status             string             `json:"status"` // vacant | occupied | cleaning | maintenance
	CurrentGuest       *GuestStay         `json:"current_guest,omitempty"`
	LastCleaned        *time.Time         `json:"last_cleaned,omitempty"`
	LastOccupied       *time.Time         `json:"last_occupied,omitempty"`
	MaintenanceHistory []MaintenanceEntry `json:"maintenance_history,omitempty"`
	DelayAlerted       bool               `json:"-"` // cleaning-delay alert already sent for the current cycle
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
