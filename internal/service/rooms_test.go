package service

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/repository"
)

// ---- In-memory fakes ----

type memRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]models.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[string]models.Room)}
}

func (f *memRoomRepo) Create(ctx context.Context, r models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[r.ID] = r
	return nil
}

func (f *memRoomRepo) GetByID(ctx context.Context, id string) (models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return models.Room{}, repository.ErrNotFound
	}
	return r, nil
}

func (f *memRoomRepo) ListByProperty(ctx context.Context, propertyID string) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Room
	for _, r := range f.rooms {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *memRoomRepo) NumberExists(ctx context.Context, propertyID, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rooms {
		if r.PropertyID == propertyID && r.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *memRoomRepo) Transition(ctx context.Context, t repository.StatusTransition) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[t.RoomID]
	if !ok {
		return false, nil
	}
	if t.From != "" && r.Status != t.From {
		return false, nil
	}
	r.Status = t.To
	if !t.PreserveGuest {
		r.CurrentGuest = t.Guest
	}
	if t.LastCleaned != nil {
		lc := t.LastCleaned.UTC()
		r.LastCleaned = &lc
	}
	if t.LastOccupied != nil {
		lo := t.LastOccupied.UTC()
		r.LastOccupied = &lo
	}
	r.DelayAlerted = false
	r.UpdatedAt = t.At.UTC()
	f.rooms[t.RoomID] = r
	return true, nil
}

func (f *memRoomRepo) MarkDelayAlerted(ctx context.Context, roomID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok || r.Status != models.StatusCleaning || r.DelayAlerted {
		return false, nil
	}
	r.DelayAlerted = true
	f.rooms[roomID] = r
	return true, nil
}

func (f *memRoomRepo) AppendMaintenanceHistory(ctx context.Context, roomID string, e models.MaintenanceEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return repository.ErrNotFound
	}
	r.MaintenanceHistory = append(r.MaintenanceHistory, e)
	f.rooms[roomID] = r
	return nil
}

func (f *memRoomRepo) PropertyIDs(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, r := range f.rooms {
		if !seen[r.PropertyID] {
			seen[r.PropertyID] = true
			out = append(out, r.PropertyID)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeTaskRepo struct {
	mu          sync.Mutex
	cleaning    []models.CleaningTask
	maintenance []models.MaintenanceRecord
	appendErr   error
}

func (f *fakeTaskRepo) AppendCleaning(ctx context.Context, t models.CleaningTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.cleaning = append(f.cleaning, t)
	return nil
}

func (f *fakeTaskRepo) AppendMaintenance(ctx context.Context, m models.MaintenanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.maintenance = append(f.maintenance, m)
	return nil
}

func (f *fakeTaskRepo) ListCleaning(ctx context.Context, propertyID, status string) ([]models.CleaningTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CleaningTask(nil), f.cleaning...), nil
}

func (f *fakeTaskRepo) ListMaintenance(ctx context.Context, propertyID string) ([]models.MaintenanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MaintenanceRecord(nil), f.maintenance...), nil
}

type fakeNotificationRepo struct {
	mu        sync.Mutex
	appended  []models.Notification
	appendErr error
}

func (f *fakeNotificationRepo) Append(ctx context.Context, n models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, n)
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Notification(nil), f.appended...), nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, at time.Time) (bool, error) {
	return true, nil
}

func (f *fakeNotificationRepo) byType(typ string) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.appended {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// ---- Shared test helpers ----

func newTestRoomService(rooms *memRoomRepo, tasks *fakeTaskRepo, notifications *fakeNotificationRepo) *RoomService {
	return NewRoomService(rooms, tasks, notifications, nil)
}

func seedRoom(t *testing.T, repo *memRoomRepo, room models.Room) models.Room {
	t.Helper()
	if room.ID == "" {
		room.ID = "room-" + room.Number
	}
	if room.PropertyID == "" {
		room.PropertyID = "prop-1"
	}
	if room.Type == "" {
		room.Type = models.TypeStandard
	}
	if err := repo.Create(context.Background(), room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func mustGetRoom(t *testing.T, repo *memRoomRepo, id string) models.Room {
	t.Helper()
	r, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get room %s: %v", id, err)
	}
	return r
}

// ---- AddRoom ----

func TestRoomService_AddRoom_CreatesVacantRoom(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})

	room, err := svc.AddRoom(context.Background(), AddRoomParams{
		PropertyID: "prop-1",
		Number:     "101",
		Floor:      1,
		Type:       models.TypeStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusVacant {
		t.Fatalf("expected vacant, got %s", room.Status)
	}
	if room.CurrentGuest != nil {
		t.Fatalf("expected no guest on a new room")
	}
	if room.ID == "" {
		t.Fatalf("expected generated room ID")
	}
}

func TestRoomService_AddRoom_RejectsDuplicateNumber(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	_, err := svc.AddRoom(context.Background(), AddRoomParams{
		PropertyID: "prop-1",
		Number:     "101",
		Floor:      1,
		Type:       models.TypeDeluxe,
	})
	if !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
}

func TestRoomService_AddRoom_AllowsSameNumberOnOtherProperty(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seedRoom(t, rooms, models.Room{Number: "101", PropertyID: "prop-1", Status: models.StatusVacant})

	_, err := svc.AddRoom(context.Background(), AddRoomParams{
		PropertyID: "prop-2",
		Number:     "101",
		Floor:      1,
		Type:       models.TypeStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRoomService_AddRoom_RejectsInvalidType(t *testing.T) {
	svc := newTestRoomService(newMemRoomRepo(), &fakeTaskRepo{}, &fakeNotificationRepo{})
	_, err := svc.AddRoom(context.Background(), AddRoomParams{
		PropertyID: "prop-1",
		Number:     "101",
		Type:       "penthouse",
	})
	if err == nil {
		t.Fatalf("expected error for invalid type")
	}
}

// ---- CheckIn ----

func TestRoomService_CheckIn_SetsGuestAndNotifies(t *testing.T) {
	rooms := newMemRoomRepo()
	notifications := &fakeNotificationRepo{}
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, notifications)
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	room, err := svc.CheckIn(context.Background(), CheckInParams{
		RoomID:    seeded.ID,
		GuestName: "Alice",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusOccupied {
		t.Fatalf("expected occupied, got %s", room.Status)
	}
	if room.CurrentGuest == nil || room.CurrentGuest.Name != "Alice" {
		t.Fatalf("expected guest Alice, got %+v", room.CurrentGuest)
	}

	got := notifications.byType(models.NotifyCheckIn)
	if len(got) != 1 {
		t.Fatalf("expected 1 check-in notification, got %d", len(got))
	}
	wantRoles := []string{models.RoleFrontDesk, models.RoleHousekeeping}
	if !reflect.DeepEqual(got[0].RecipientRoles, wantRoles) {
		t.Fatalf("expected roles %v, got %v", wantRoles, got[0].RecipientRoles)
	}
}

func TestRoomService_CheckIn_NotVacant_LeavesRoomUnchanged(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	lastOccupied := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	seeded := seedRoom(t, rooms, models.Room{
		Number:       "202",
		Status:       models.StatusCleaning,
		LastOccupied: &lastOccupied,
	})
	before := mustGetRoom(t, rooms, seeded.ID)

	_, err := svc.CheckIn(context.Background(), CheckInParams{
		RoomID:    seeded.ID,
		GuestName: "Bob",
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 1),
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	after := mustGetRoom(t, rooms, seeded.ID)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("room changed by rejected check-in:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRoomService_CheckIn_UnknownRoom(t *testing.T) {
	svc := newTestRoomService(newMemRoomRepo(), &fakeTaskRepo{}, &fakeNotificationRepo{})
	_, err := svc.CheckIn(context.Background(), CheckInParams{
		RoomID:    "missing",
		GuestName: "Alice",
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 1),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomService_CheckIn_RejectsBadDates(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(context.Background(), CheckInParams{
		RoomID:    seeded.ID,
		GuestName: "Alice",
		CheckIn:   day,
		CheckOut:  day, // not after check-in
	})
	if err == nil {
		t.Fatalf("expected error for check-out not after check-in")
	}
}

// ---- CheckOut ----

func TestRoomService_CheckOut_ClearsGuestAndEmitsSideEffects(t *testing.T) {
	rooms := newMemRoomRepo()
	tasks := &fakeTaskRepo{}
	notifications := &fakeNotificationRepo{}
	svc := newTestRoomService(rooms, tasks, notifications)

	now := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seeded := seedRoom(t, rooms, models.Room{
		Number: "101",
		Status: models.StatusOccupied,
		CurrentGuest: &models.GuestStay{
			Name:     "Alice",
			CheckIn:  now.AddDate(0, 0, -2),
			CheckOut: now.AddDate(0, 0, 1),
		},
	})

	room, err := svc.CheckOut(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusCleaning {
		t.Fatalf("expected cleaning, got %s", room.Status)
	}
	if room.CurrentGuest != nil {
		t.Fatalf("expected guest cleared, got %+v", room.CurrentGuest)
	}
	if room.LastOccupied == nil || !room.LastOccupied.Equal(now) {
		t.Fatalf("expected lastOccupied=%v, got %v", now, room.LastOccupied)
	}

	if len(tasks.cleaning) != 1 {
		t.Fatalf("expected 1 cleaning task, got %d", len(tasks.cleaning))
	}
	task := tasks.cleaning[0]
	if task.Type != models.CleaningCheckout || task.Priority != models.PriorityHigh {
		t.Fatalf("expected checkout/high task, got %s/%s", task.Type, task.Priority)
	}
	if task.RoomID != seeded.ID {
		t.Fatalf("task points at wrong room: %s", task.RoomID)
	}

	got := notifications.byType(models.NotifyCheckOut)
	if len(got) != 1 {
		t.Fatalf("expected 1 checkout notification, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].RecipientRoles, []string{models.RoleHousekeeping}) {
		t.Fatalf("expected housekeeping recipients, got %v", got[0].RecipientRoles)
	}
}

func TestRoomService_CheckOut_NotOccupied(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	_, err := svc.CheckOut(context.Background(), seeded.ID)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

// ---- MarkClean ----

func TestRoomService_MarkClean_SetsLastCleaned(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})

	now := time.Date(2025, 6, 3, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	lastOccupied := now.Add(-2 * time.Hour)
	seeded := seedRoom(t, rooms, models.Room{
		Number:       "101",
		Status:       models.StatusCleaning,
		LastOccupied: &lastOccupied,
	})

	room, err := svc.MarkClean(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusVacant {
		t.Fatalf("expected vacant, got %s", room.Status)
	}
	if room.LastCleaned == nil || !room.LastCleaned.Equal(now) {
		t.Fatalf("expected lastCleaned=%v, got %v", now, room.LastCleaned)
	}

	// A second mark-clean must be rejected.
	if _, err := svc.MarkClean(context.Background(), seeded.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on second mark-clean, got %v", err)
	}
}

// ---- SetMaintenance ----

func TestRoomService_SetMaintenance_FromOccupiedKeepsGuest(t *testing.T) {
	rooms := newMemRoomRepo()
	tasks := &fakeTaskRepo{}
	svc := newTestRoomService(rooms, tasks, &fakeNotificationRepo{})

	guest := &models.GuestStay{
		Name:     "Alice",
		CheckIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusOccupied, CurrentGuest: guest})

	room, err := svc.SetMaintenance(context.Background(), seeded.ID, "leaking faucet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusMaintenance {
		t.Fatalf("expected maintenance, got %s", room.Status)
	}
	if room.CurrentGuest == nil || room.CurrentGuest.Name != "Alice" {
		t.Fatalf("expected guest preserved, got %+v", room.CurrentGuest)
	}

	if len(tasks.maintenance) != 1 {
		t.Fatalf("expected 1 maintenance record, got %d", len(tasks.maintenance))
	}
	rec := tasks.maintenance[0]
	if rec.Type != models.MaintenanceInspection || rec.Status != models.MaintenanceScheduled {
		t.Fatalf("expected inspection/scheduled record, got %s/%s", rec.Type, rec.Status)
	}
	if rec.Priority != models.PriorityMedium {
		t.Fatalf("expected medium priority, got %s", rec.Priority)
	}
	if len(room.MaintenanceHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(room.MaintenanceHistory))
	}
}

// ---- UpdateRoomStatus ----

func TestRoomService_UpdateRoomStatus_OccupiedRequiresCheckIn(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	_, err := svc.UpdateRoomStatus(context.Background(), seeded.ID, models.StatusOccupied)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestRoomService_UpdateRoomStatus_CleaningFromOccupiedActsAsCheckOut(t *testing.T) {
	rooms := newMemRoomRepo()
	tasks := &fakeTaskRepo{}
	svc := newTestRoomService(rooms, tasks, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{
		Number: "101",
		Status: models.StatusOccupied,
		CurrentGuest: &models.GuestStay{
			Name:     "Alice",
			CheckIn:  time.Now().UTC().AddDate(0, 0, -1),
			CheckOut: time.Now().UTC().AddDate(0, 0, 1),
		},
	})

	room, err := svc.UpdateRoomStatus(context.Background(), seeded.ID, models.StatusCleaning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusCleaning || room.CurrentGuest != nil {
		t.Fatalf("expected guest-cleared cleaning room, got status=%s guest=%+v", room.Status, room.CurrentGuest)
	}
	if len(tasks.cleaning) != 1 || tasks.cleaning[0].Type != models.CleaningCheckout {
		t.Fatalf("expected a checkout cleaning task, got %+v", tasks.cleaning)
	}
}

func TestRoomService_UpdateRoomStatus_VacantExitsMaintenance(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusMaintenance})

	room, err := svc.UpdateRoomStatus(context.Background(), seeded.ID, models.StatusVacant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != models.StatusVacant {
		t.Fatalf("expected vacant, got %s", room.Status)
	}
}

func TestRoomService_UpdateRoomStatus_RejectsUnknownStatus(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	seeded := seedRoom(t, rooms, models.Room{Number: "101", Status: models.StatusVacant})

	if _, err := svc.UpdateRoomStatus(context.Background(), seeded.ID, "condemned"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

// ---- Full manual cycle ----

func TestRoomService_FullManualCycle(t *testing.T) {
	rooms := newMemRoomRepo()
	tasks := &fakeTaskRepo{}
	notifications := &fakeNotificationRepo{}
	svc := newTestRoomService(rooms, tasks, notifications)
	ctx := context.Background()

	added, err := svc.AddRoom(ctx, AddRoomParams{
		PropertyID: "prop-1", Number: "101", Floor: 1, Type: models.TypeStandard,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Status != models.StatusVacant {
		t.Fatalf("expected vacant after add, got %s", added.Status)
	}

	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	room, err := svc.CheckIn(ctx, CheckInParams{
		RoomID: added.ID, GuestName: "Alice", CheckIn: today, CheckOut: today.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if room.Status != models.StatusOccupied || room.CurrentGuest == nil {
		t.Fatalf("expected occupied with guest, got %+v", room)
	}

	room, err = svc.CheckOut(ctx, added.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if room.Status != models.StatusCleaning || room.CurrentGuest != nil || room.LastOccupied == nil {
		t.Fatalf("unexpected room after check-out: %+v", room)
	}

	room, err = svc.MarkClean(ctx, added.ID)
	if err != nil {
		t.Fatalf("mark clean: %v", err)
	}
	if room.Status != models.StatusVacant || room.LastCleaned == nil {
		t.Fatalf("unexpected room after mark clean: %+v", room)
	}

	if _, err := svc.MarkClean(ctx, added.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on repeat mark clean, got %v", err)
	}
}

// Guest presence must track occupancy through every step of the cycle.
func TestRoomService_GuestInvariantAcrossTransitions(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := newTestRoomService(rooms, &fakeTaskRepo{}, &fakeNotificationRepo{})
	ctx := context.Background()

	added, err := svc.AddRoom(ctx, AddRoomParams{
		PropertyID: "prop-1", Number: "303", Floor: 3, Type: models.TypeSuite,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	assertInvariant := func(step string) {
		t.Helper()
		r := mustGetRoom(t, rooms, added.ID)
		occupied := r.Status == models.StatusOccupied
		hasGuest := r.CurrentGuest != nil
		if occupied != hasGuest {
			t.Fatalf("%s: guest invariant broken: status=%s guest=%v", step, r.Status, hasGuest)
		}
	}

	assertInvariant("after add")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CheckIn(ctx, CheckInParams{RoomID: added.ID, GuestName: "Alice", CheckIn: day, CheckOut: day.AddDate(0, 0, 1)}); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	assertInvariant("after check-in")
	if _, err := svc.CheckOut(ctx, added.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	assertInvariant("after check-out")
	if _, err := svc.MarkClean(ctx, added.ID); err != nil {
		t.Fatalf("mark clean: %v", err)
	}
	assertInvariant("after mark clean")
}
