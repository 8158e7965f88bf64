package service

import (
	"context"
	"time"

	"hotelops/internal/logger"
	"hotelops/internal/models"
	"hotelops/internal/repository"
)

// cleaningDelayThreshold is how long a room may sit in "cleaning" after the
// guest left before housekeeping and the manager are alerted.
const cleaningDelayThreshold = 24 * time.Hour

// LifecycleService derives automatic room transitions from snapshots: an
// occupied room whose checkout date has passed moves to cleaning, and a room
// stuck in cleaning past the threshold raises a delay alert. Both paths are
// guarded by conditional updates, so re-running an evaluation (or racing a
// manual action) emits each side effect at most once per cycle.
type LifecycleService struct {
	rooms         repository.RoomRepo
	tasks         repository.TaskRepo
	notifications repository.NotificationRepo
	log           *logger.Logger
	now           func() time.Time
}

func NewLifecycleService(rooms repository.RoomRepo, tasks repository.TaskRepo, notifications repository.NotificationRepo, log *logger.Logger) *LifecycleService {
	return &LifecycleService{
		rooms:         rooms,
		tasks:         tasks,
		notifications: notifications,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// EvaluateProperty re-derives automatic transitions over the property's
// current snapshot. One room's failure is logged and does not stop the pass.
func (s *LifecycleService) EvaluateProperty(ctx context.Context, propertyID string) error {
	snapshot, err := s.rooms.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}

	now := s.now()
	for _, room := range snapshot {
		if err := s.evaluateRoom(ctx, room, now); err != nil && s.log != nil {
			s.log.Errorw("room_evaluation_failed", "err", err, "room", room.Number, "property", propertyID)
		}
	}
	return nil
}

func (s *LifecycleService) evaluateRoom(ctx context.Context, room models.Room, now time.Time) error {
	switch room.Status {
	case models.StatusOccupied:
		if room.CurrentGuest != nil && room.CurrentGuest.CheckOut.Before(now) {
			return s.applyAutoCheckout(ctx, room, now)
		}
	case models.StatusCleaning:
		if !room.DelayAlerted && room.LastOccupied != nil && now.Sub(*room.LastOccupied) > cleaningDelayThreshold {
			return s.raiseCleaningDelay(ctx, room)
		}
	}
	return nil
}

// applyAutoCheckout performs occupied -> cleaning for an expired stay. The
// guard on the prior status means a concurrent manual check-out (or another
// evaluation pass) wins exactly once; the loser emits nothing.
func (s *LifecycleService) applyAutoCheckout(ctx context.Context, room models.Room, now time.Time) error {
	ok, err := s.rooms.Transition(ctx, repository.StatusTransition{
		RoomID:       room.ID,
		From:         models.StatusOccupied,
		To:           models.StatusCleaning,
		Guest:        nil,
		LastOccupied: &now,
		At:           now,
	})
	if err != nil {
		return err
	}
	if !ok {
		// Already past occupied; nothing to do.
		return nil
	}

	if s.log != nil {
		s.log.Infow("auto_checkout_applied", "room", room.Number, "property", room.PropertyID)
	}

	if err := s.tasks.AppendCleaning(ctx, models.CleaningTask{
		PropertyID: room.PropertyID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Status:     models.TaskPending,
		Priority:   models.PriorityHigh,
		Type:       models.CleaningCheckout,
		Notes:      "Checkout date passed",
		CreatedAt:  now,
	}); err != nil && s.log != nil {
		s.log.Errorw("cleaning_task_append_failed", "err", err, "room", room.Number)
	}

	if err := s.notifications.Append(ctx, notifyCheckOut(room)); err != nil && s.log != nil {
		s.log.Errorw("notification_append_failed", "err", err, "room", room.Number)
	}
	return nil
}

// raiseCleaningDelay emits the delay alert without changing status. The
// delay_alerted marker is flipped first with a conditional update so the
// alert fires once per cleaning cycle no matter how often snapshots arrive.
func (s *LifecycleService) raiseCleaningDelay(ctx context.Context, room models.Room) error {
	ok, err := s.rooms.MarkDelayAlerted(ctx, room.ID)
	if err != nil {
		return err
	}
	if !ok {
		// Another pass already alerted, or the room left cleaning.
		return nil
	}

	if s.log != nil {
		s.log.Warnw("cleaning_delay_detected", "room", room.Number, "property", room.PropertyID)
	}
	return s.notifications.Append(ctx, notifyCleaningDelay(room))
}

// Run sweeps all properties at the given interval until ctx is canceled.
// A non-positive tick disables the sweep, leaving snapshot-driven evaluation
// as the only trigger.
func (s *LifecycleService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			properties, err := s.rooms.PropertyIDs(ctx)
			if err != nil {
				if s.log != nil {
					s.log.Errorw("sweep_list_properties_failed", "err", err)
				}
				continue
			}
			for _, propertyID := range properties {
				if err := s.EvaluateProperty(ctx, propertyID); err != nil && s.log != nil {
					s.log.Errorw("sweep_failed", "err", err, "property", propertyID)
				}
			}
		}
	}
}
