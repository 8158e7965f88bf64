package models

import "time"

// Cleaning task types and priorities.
const (
	CleaningCheckout = "checkout"
	CleaningRoutine  = "routine"

	PriorityHigh    = "high"
	PriorityMedium  = "medium"
	PriorityRoutine = "routine"
)

// Cleaning task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// CleaningTask is created whenever a room enters "cleaning". Housekeeping
// workflows own its lifecycle from there; the lifecycle engine only appends.
type CleaningTask struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Status     string    `json:"status"`   // pending | in_progress | completed
	Priority   string    `json:"priority"` // high | routine
	Type       string    `json:"type"`     // checkout | routine
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Maintenance record types and statuses.
const (
	MaintenanceInspection = "inspection"
	MaintenanceRepair     = "repair"
	MaintenanceEmergency  = "emergency"

	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

// MaintenanceRecord is created whenever a room is placed under maintenance.
type MaintenanceRecord struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	RoomID        string    `json:"room_id"`
	Type          string    `json:"type"`   // inspection | repair | emergency
	Status        string    `json:"status"` // scheduled | in_progress | completed
	Description   string    `json:"description"`
	Priority      string    `json:"priority"`
	ScheduledDate time.Time `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
