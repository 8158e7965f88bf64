package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelops/internal/logger"
	"hotelops/internal/models"
	"hotelops/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for room operations.
var (
	// ErrInvalidState rejects a manual transition not legal from the
	// room's current status. Wrapped errors carry the specific reason.
	ErrInvalidState = errors.New("invalid state")
	// ErrDuplicateNumber rejects a room number collision within a property.
	ErrDuplicateNumber = errors.New("room number already exists")
	// ErrNotFound mirrors the repository sentinel for callers that only
	// import the service package.
	ErrNotFound = repository.ErrNotFound
)

// AddRoomParams describes a new room. Rooms are created vacant.
type AddRoomParams struct {
	PropertyID string
	Number     string
	Floor      int
	Type       string // standard | deluxe | suite
}

// CheckInParams describes a manual check-in.
type CheckInParams struct {
	RoomID    string
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}

type RoomService struct {
	rooms         repository.RoomRepo
	tasks         repository.TaskRepo
	notifications repository.NotificationRepo
	log           *logger.Logger
	now           func() time.Time
}

func NewRoomService(rooms repository.RoomRepo, tasks repository.TaskRepo, notifications repository.NotificationRepo, log *logger.Logger) *RoomService {
	return &RoomService{
		rooms:         rooms,
		tasks:         tasks,
		notifications: notifications,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// AddRoom creates a room in "vacant". Rejects a number already used within
// the property.
func (s *RoomService) AddRoom(ctx context.Context, p AddRoomParams) (models.Room, error) {
	if err := validateAddRoom(p); err != nil {
		return models.Room{}, err
	}

	exists, err := s.rooms.NumberExists(ctx, p.PropertyID, p.Number)
	if err != nil {
		return models.Room{}, err
	}
	if exists {
		return models.Room{}, fmt.Errorf("%w: number %s in property %s", ErrDuplicateNumber, p.Number, p.PropertyID)
	}

	now := s.now()
	room := models.Room{
		ID:         uuid.NewString(),
		PropertyID: p.PropertyID,
		Number:     p.Number,
		Floor:      p.Floor,
		Type:       p.Type,
		Status:     models.StatusVacant,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (models.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context, propertyID string) ([]models.Room, error) {
	return s.rooms.ListByProperty(ctx, propertyID)
}

// CheckIn moves a vacant room to occupied and records the guest.
func (s *RoomService) CheckIn(ctx context.Context, p CheckInParams) (models.Room, error) {
	if strings.TrimSpace(p.GuestName) == "" {
		return models.Room{}, errors.New("guest name is required")
	}
	if !p.CheckOut.After(p.CheckIn) {
		return models.Room{}, errors.New("check-out date must be after check-in date")
	}

	room, err := s.rooms.GetByID(ctx, p.RoomID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Status != models.StatusVacant {
		return models.Room{}, fmt.Errorf("%w: room %s is not vacant", ErrInvalidState, room.Number)
	}

	guest := &models.GuestStay{
		Name:     p.GuestName,
		CheckIn:  p.CheckIn.UTC(),
		CheckOut: p.CheckOut.UTC(),
	}
	ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
		RoomID: room.ID,
		From:   models.StatusVacant,
		To:     models.StatusOccupied,
		Guest:  guest,
		At:     s.now(),
	})
	if err != nil {
		return models.Room{}, err
	}
	if !ok {
		return models.Room{}, fmt.Errorf("%w: room %s is not vacant", ErrInvalidState, room.Number)
	}

	s.emitNotification(ctx, notifyCheckIn(room, p.GuestName))
	return s.rooms.GetByID(ctx, room.ID)
}

// CheckOut moves an occupied room to cleaning, clears the guest, stamps
// lastOccupied, and emits the checkout cleaning task plus a housekeeping
// notification. The conditional transition makes a race against the
// automatic checkout pass a no-op on the losing side.
func (s *RoomService) CheckOut(ctx context.Context, roomID string) (models.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Status != models.StatusOccupied {
		return models.Room{}, fmt.Errorf("%w: room %s is not occupied", ErrInvalidState, room.Number)
	}

	now := s.now()
	ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
		RoomID:       room.ID,
		From:         models.StatusOccupied,
		To:           models.StatusCleaning,
		Guest:        nil,
		LastOccupied: &now,
		At:           now,
	})
	if err != nil {
		return models.Room{}, err
	}
	if !ok {
		return models.Room{}, fmt.Errorf("%w: room %s is not occupied", ErrInvalidState, room.Number)
	}

	// Status committed; derived records follow, fire-and-forget.
	s.emitCleaningTask(ctx, room, models.CleaningCheckout, models.PriorityHigh, now)
	s.emitNotification(ctx, notifyCheckOut(room))
	return s.rooms.GetByID(ctx, room.ID)
}

// MarkClean moves a cleaning room back to vacant and stamps lastCleaned.
func (s *RoomService) MarkClean(ctx context.Context, roomID string) (models.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Status != models.StatusCleaning {
		return models.Room{}, fmt.Errorf("%w: room %s is not being cleaned", ErrInvalidState, room.Number)
	}

	now := s.now()
	ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
		RoomID:      room.ID,
		From:        models.StatusCleaning,
		To:          models.StatusVacant,
		LastCleaned: &now,
		At:          now,
	})
	if err != nil {
		return models.Room{}, err
	}
	if !ok {
		return models.Room{}, fmt.Errorf("%w: room %s is not being cleaned", ErrInvalidState, room.Number)
	}

	s.emitNotification(ctx, notifyRoomCleaned(room))
	return s.rooms.GetByID(ctx, room.ID)
}

// SetMaintenance forces a room into maintenance from any state and emits an
// inspection record. A guest occupying the room stays on the record; vacating
// is a separate front-desk concern.
func (s *RoomService) SetMaintenance(ctx context.Context, roomID, description string) (models.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return models.Room{}, err
	}

	now := s.now()
	ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
		RoomID:        room.ID,
		From:          room.Status,
		To:            models.StatusMaintenance,
		PreserveGuest: true,
		At:            now,
	})
	if err != nil {
		return models.Room{}, err
	}
	if !ok {
		return models.Room{}, fmt.Errorf("%w: room %s changed status concurrently", ErrInvalidState, room.Number)
	}

	if description == "" {
		description = fmt.Sprintf("Scheduled inspection for room %s", room.Number)
	}
	s.emitMaintenanceRecord(ctx, room, description, now)
	return s.rooms.GetByID(ctx, room.ID)
}

// UpdateRoomStatus is the generic explicit status change. Transitions with
// richer contracts (check-in) are refused in favor of their dedicated
// operations; the rest route through the matching lifecycle step so side
// effects and the guest invariant hold.
func (s *RoomService) UpdateRoomStatus(ctx context.Context, roomID, status string) (models.Room, error) {
	switch status {
	case models.StatusOccupied:
		return models.Room{}, fmt.Errorf("%w: use check-in to occupy a room", ErrInvalidState)
	case models.StatusMaintenance:
		return s.SetMaintenance(ctx, roomID, "")
	case models.StatusCleaning, models.StatusVacant:
		// handled below
	default:
		return models.Room{}, fmt.Errorf("invalid status %q", status)
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return models.Room{}, err
	}

	if status == models.StatusCleaning {
		if room.Status == models.StatusOccupied {
			return s.CheckOut(ctx, roomID)
		}
		now := s.now()
		ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
			RoomID: room.ID,
			From:   room.Status,
			To:     models.StatusCleaning,
			At:     now,
		})
		if err != nil {
			return models.Room{}, err
		}
		if !ok {
			return models.Room{}, fmt.Errorf("%w: room %s changed status concurrently", ErrInvalidState, room.Number)
		}
		s.emitCleaningTask(ctx, room, models.CleaningRoutine, models.PriorityRoutine, now)
		return s.rooms.GetByID(ctx, room.ID)
	}

	// status == vacant
	switch room.Status {
	case models.StatusCleaning:
		return s.MarkClean(ctx, roomID)
	case models.StatusMaintenance:
		ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
			RoomID: room.ID,
			From:   models.StatusMaintenance,
			To:     models.StatusVacant,
			At:     s.now(),
		})
		if err != nil {
			return models.Room{}, err
		}
		if !ok {
			return models.Room{}, fmt.Errorf("%w: room %s changed status concurrently", ErrInvalidState, room.Number)
		}
		return s.rooms.GetByID(ctx, room.ID)
	default:
		return models.Room{}, fmt.Errorf("%w: room %s cannot be marked vacant from %s", ErrInvalidState, room.Number, room.Status)
	}
}

// emitCleaningTask appends a cleaning task; failures are logged, never
// surfaced, so a sink outage cannot roll back an applied transition.
func (s *RoomService) emitCleaningTask(ctx context.Context, room models.Room, taskType, priority string, now time.Time) {
	err := s.tasks.AppendCleaning(ctx, models.CleaningTask{
		PropertyID: room.PropertyID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Status:     models.TaskPending,
		Priority:   priority,
		Type:       taskType,
		CreatedAt:  now,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("cleaning_task_append_failed", "err", err, "room", room.Number)
	}
}

func (s *RoomService) emitMaintenanceRecord(ctx context.Context, room models.Room, description string, now time.Time) {
	err := s.tasks.AppendMaintenance(ctx, models.MaintenanceRecord{
		PropertyID:    room.PropertyID,
		RoomID:        room.ID,
		Type:          models.MaintenanceInspection,
		Status:        models.MaintenanceScheduled,
		Description:   description,
		Priority:      models.PriorityMedium,
		ScheduledDate: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("maintenance_record_append_failed", "err", err, "room", room.Number)
	}
	err = s.rooms.AppendMaintenanceHistory(ctx, room.ID, models.MaintenanceEntry{
		Date:  now,
		Type:  models.MaintenanceInspection,
		Notes: description,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("maintenance_history_append_failed", "err", err, "room", room.Number)
	}
}

func (s *RoomService) emitNotification(ctx context.Context, n models.Notification) {
	if err := s.notifications.Append(ctx, n); err != nil && s.log != nil {
		s.log.Errorw("notification_append_failed", "err", err, "type", n.Type, "related", n.RelatedID)
	}
}

func validateAddRoom(p AddRoomParams) error {
	if strings.TrimSpace(p.PropertyID) == "" {
		return errors.New("property id is required")
	}
	if strings.TrimSpace(p.Number) == "" {
		return errors.New("room number is required")
	}
	switch p.Type {
	case models.TypeStandard, models.TypeDeluxe, models.TypeSuite:
		return nil
	default:
		return fmt.Errorf("invalid room type %q: must be standard, deluxe, or suite", p.Type)
	}
}
