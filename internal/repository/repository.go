package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/repository/db"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("not found")

// StatusTransition describes a guarded room status change. From is the
// expected current status; a transition whose guard fails applies nothing.
// An empty From skips the guard (used for forcing maintenance from any state).
type StatusTransition struct {
	RoomID        string
	From          string
	To            string
	Guest         *models.GuestStay // nil clears the guest columns
	PreserveGuest bool              // leave guest columns untouched (forced maintenance)
	LastCleaned   *time.Time        // written only when non-nil
	LastOccupied  *time.Time        // written only when non-nil
	At            time.Time         // becomes updated_at
}

type RoomRepo interface {
	Create(ctx context.Context, r models.Room) error
	GetByID(ctx context.Context, id string) (models.Room, error)
	ListByProperty(ctx context.Context, propertyID string) ([]models.Room, error)
	NumberExists(ctx context.Context, propertyID, number string) (bool, error)
	// Transition applies a guarded status change and reports whether the
	// guard held. The losing side of a race sees false, nil.
	Transition(ctx context.Context, t StatusTransition) (bool, error)
	// MarkDelayAlerted flips the cleaning-delay marker; only one caller
	// per cleaning cycle observes true.
	MarkDelayAlerted(ctx context.Context, roomID string) (bool, error)
	AppendMaintenanceHistory(ctx context.Context, roomID string, e models.MaintenanceEntry) error
	// PropertyIDs lists the distinct tenants present in the rooms table,
	// feeding the periodic lifecycle sweep.
	PropertyIDs(ctx context.Context) ([]string, error)
}

type TaskRepo interface {
	AppendCleaning(ctx context.Context, t models.CleaningTask) error
	AppendMaintenance(ctx context.Context, m models.MaintenanceRecord) error
	ListCleaning(ctx context.Context, propertyID, status string) ([]models.CleaningTask, error)
	ListMaintenance(ctx context.Context, propertyID string) ([]models.MaintenanceRecord, error)
}

type NotificationRepo interface {
	Append(ctx context.Context, n models.Notification) error
	List(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) (bool, error)
}

type RequestRepo interface {
	Create(ctx context.Context, r models.ServiceRequest) error
	GetByID(ctx context.Context, id string) (models.ServiceRequest, error)
	List(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error)
	Update(ctx context.Context, r models.ServiceRequest) error
}

type StaffRepo interface {
	Create(ctx context.Context, s models.StaffMember) error
	GetByID(ctx context.Context, id string) (models.StaffMember, error)
	List(ctx context.Context, propertyID string) ([]models.StaffMember, error)
	Update(ctx context.Context, s models.StaffMember) error
	Delete(ctx context.Context, id string) error
}

type InventoryRepo interface {
	Create(ctx context.Context, it models.InventoryItem) error
	List(ctx context.Context, propertyID string) ([]models.InventoryItem, error)
	// Adjust changes quantity by delta; returns false when the item is
	// missing or the adjustment would drive stock negative.
	Adjust(ctx context.Context, id string, delta int, at time.Time) (bool, error)
	ListLowStock(ctx context.Context, propertyID string) ([]models.InventoryItem, error)
}

type Authorization interface {
	Create(username, hash, role, propertyID string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Repository struct {
	Rooms         RoomRepo
	Tasks         TaskRepo
	Notifications NotificationRepo
	Requests      RequestRepo
	Staff         StaffRepo
	Inventory     InventoryRepo
	Auth          Authorization
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Rooms:         NewRoomSQLite(database),
		Tasks:         NewTaskSQLite(database),
		Notifications: NewNotificationSQLite(database),
		Requests:      NewRequestSQLite(database),
		Staff:         NewStaffSQLite(database),
		Inventory:     NewInventorySQLite(database),
		Auth:          NewUserRepository(database),
	}
}

// InitDB re-exports db.InitDB so main only imports this package.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
