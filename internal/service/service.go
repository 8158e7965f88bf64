package service

import (
	"context"
	"time"

	"hotelops/internal/logger"
	"hotelops/internal/models"
	"hotelops/internal/repository"
)

type Authorization interface {
	SignUp(p SignUpParams) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (*TokenClaims, error)
}

// Rooms exposes the staff-facing room operations: add, occupy, release, clean.
type Rooms interface {
	AddRoom(ctx context.Context, p AddRoomParams) (models.Room, error)
	GetRoom(ctx context.Context, id string) (models.Room, error)
	ListRooms(ctx context.Context, propertyID string) ([]models.Room, error)
	CheckIn(ctx context.Context, p CheckInParams) (models.Room, error)
	CheckOut(ctx context.Context, roomID string) (models.Room, error)
	MarkClean(ctx context.Context, roomID string) (models.Room, error)
	SetMaintenance(ctx context.Context, roomID, description string) (models.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID, status string) (models.Room, error)
}

// Lifecycle evaluates automatic transitions over a property's room snapshot.
// EvaluateProperty is also invoked on every snapshot read, so expired
// checkouts are folded in before rooms are handed to the UI layer.
// Run drives the periodic sweep; stop via context cancellation in main().
type Lifecycle interface {
	EvaluateProperty(ctx context.Context, propertyID string) error
	Run(ctx context.Context, tick time.Duration)
}

// Requests exposes guest service-request tickets.
type Requests interface {
	CreateRequest(ctx context.Context, p RequestParams) (models.ServiceRequest, error)
	ListRequests(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error)
	UpdateRequest(ctx context.Context, id, status, assignedTo string) (models.ServiceRequest, error)
}

// Staff exposes roster management.
type Staff interface {
	CreateStaff(ctx context.Context, p StaffParams) (models.StaffMember, error)
	ListStaff(ctx context.Context, propertyID string) ([]models.StaffMember, error)
	UpdateStaff(ctx context.Context, id string, p StaffParams) (models.StaffMember, error)
	DeleteStaff(ctx context.Context, id string) error
}

// Inventory exposes stock tracking.
type Inventory interface {
	CreateItem(ctx context.Context, p InventoryParams) (models.InventoryItem, error)
	ListItems(ctx context.Context, propertyID string) ([]models.InventoryItem, error)
	AdjustItem(ctx context.Context, id string, delta int) error
	ListLowStock(ctx context.Context, propertyID string) ([]models.InventoryItem, error)
}

// Notifications is the consumer-side surface of the notification sink.
type Notifications interface {
	ListNotifications(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// AuthConfig carries token settings loaded from the application config.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Rooms
	Lifecycle
	Requests
	Staff
	Inventory
	Notifications
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger, auth AuthConfig) *Service {
	rooms := NewRoomService(repos.Rooms, repos.Tasks, repos.Notifications, log)
	return &Service{
		Rooms:         rooms,
		Lifecycle:     NewLifecycleService(repos.Rooms, repos.Tasks, repos.Notifications, log),
		Requests:      NewRequestService(repos.Requests, repos.Notifications),
		Staff:         NewStaffService(repos.Staff),
		Inventory:     NewInventoryService(repos.Inventory),
		Notifications: NewNotificationService(repos.Notifications),
		Authorization: NewAuthService(repos.Auth, auth),
	}
}
