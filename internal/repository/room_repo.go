package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotelops/internal/models"
)

type RoomSQLite struct {
	db *sql.DB
}

func NewRoomSQLite(db *sql.DB) *RoomSQLite {
	return &RoomSQLite{db: db}
}

var _ RoomRepo = (*RoomSQLite)(nil)

const (
	insertRoomSQL = `
		INSERT INTO rooms (id, property_id, number, floor, type, status,
			guest_name, guest_check_in, guest_check_out,
			last_cleaned, last_occupied, maintenance_history, delay_alerted,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectRoomColumns = `
		id, property_id, number, floor, type, status,
		guest_name, guest_check_in, guest_check_out,
		last_cleaned, last_occupied, maintenance_history, delay_alerted,
		created_at, updated_at
	`
)

// marshalHistory converts the history slice to a JSON string.
func marshalHistory(entries []models.MaintenanceEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalHistory parses a JSON string into a history slice.
func unmarshalHistory(s string) ([]models.MaintenanceEntry, error) {
	if s == "" {
		return nil, nil
	}
	var entries []models.MaintenanceEntry
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *RoomSQLite) Create(ctx context.Context, room models.Room) error {
	history, err := marshalHistory(room.MaintenanceHistory)
	if err != nil {
		return fmt.Errorf("marshal maintenance history: %w", err)
	}

	var guestName sql.NullString
	var guestIn, guestOut sql.NullTime
	if g := room.CurrentGuest; g != nil {
		guestName = sql.NullString{String: g.Name, Valid: true}
		guestIn = sql.NullTime{Time: g.CheckIn.UTC(), Valid: true}
		guestOut = sql.NullTime{Time: g.CheckOut.UTC(), Valid: true}
	}

	_, err = r.db.ExecContext(ctx, insertRoomSQL,
		room.ID,
		room.PropertyID,
		room.Number,
		room.Floor,
		room.Type,
		room.Status,
		guestName,
		guestIn,
		guestOut,
		nullableTime(room.LastCleaned),
		nullableTime(room.LastOccupied),
		history,
		room.DelayAlerted,
		room.CreatedAt.UTC(),
		room.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert room %q: %w", room.Number, err)
	}
	return nil
}

func (r *RoomSQLite) GetByID(ctx context.Context, id string) (models.Room, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectRoomColumns+` FROM rooms WHERE id = ?`, id)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, fmt.Errorf("select room %q: %w", id, err)
	}
	return room, nil
}

func (r *RoomSQLite) ListByProperty(ctx context.Context, propertyID string) ([]models.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectRoomColumns+` FROM rooms WHERE property_id = ? ORDER BY number`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list rooms for property %q: %w", propertyID, err)
	}
	defer rows.Close()

	out := make([]models.Room, 0, 64)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomSQLite) NumberExists(ctx context.Context, propertyID, number string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM rooms WHERE property_id = ? AND number = ?`,
		propertyID, number).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count rooms numbered %q: %w", number, err)
	}
	return n > 0, nil
}

// Transition applies the guarded update. The WHERE clause carries the expected
// prior status, so a concurrent pass that already moved the room affects zero
// rows and the caller emits no side effects.
func (r *RoomSQLite) Transition(ctx context.Context, t StatusTransition) (bool, error) {
	var guestName sql.NullString
	var guestIn, guestOut sql.NullTime
	if g := t.Guest; g != nil {
		guestName = sql.NullString{String: g.Name, Valid: true}
		guestIn = sql.NullTime{Time: g.CheckIn.UTC(), Valid: true}
		guestOut = sql.NullTime{Time: g.CheckOut.UTC(), Valid: true}
	}

	at := t.At
	if at.IsZero() {
		at = time.Now()
	}

	var q string
	var args []any
	if t.PreserveGuest {
		q = `
		UPDATE rooms SET
			status = ?,
			last_cleaned = COALESCE(?, last_cleaned),
			last_occupied = COALESCE(?, last_occupied),
			delay_alerted = 0,
			updated_at = ?
		WHERE id = ?
	`
		args = []any{
			t.To,
			nullableTime(t.LastCleaned),
			nullableTime(t.LastOccupied),
			at.UTC(),
			t.RoomID,
		}
	} else {
		q = `
		UPDATE rooms SET
			status = ?,
			guest_name = ?,
			guest_check_in = ?,
			guest_check_out = ?,
			last_cleaned = COALESCE(?, last_cleaned),
			last_occupied = COALESCE(?, last_occupied),
			delay_alerted = 0,
			updated_at = ?
		WHERE id = ?
	`
		args = []any{
			t.To,
			guestName,
			guestIn,
			guestOut,
			nullableTime(t.LastCleaned),
			nullableTime(t.LastOccupied),
			at.UTC(),
			t.RoomID,
		}
	}
	if t.From != "" {
		q += ` AND status = ?`
		args = append(args, t.From)
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("transition room %q to %q: %w", t.RoomID, t.To, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for room %q: %w", t.RoomID, err)
	}
	return n == 1, nil
}

func (r *RoomSQLite) MarkDelayAlerted(ctx context.Context, roomID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rooms SET delay_alerted = 1
		WHERE id = ? AND status = ? AND delay_alerted = 0
	`, roomID, models.StatusCleaning)
	if err != nil {
		return false, fmt.Errorf("mark delay alerted for room %q: %w", roomID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *RoomSQLite) PropertyIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT property_id FROM rooms ORDER BY property_id`)
	if err != nil {
		return nil, fmt.Errorf("list property ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomSQLite) AppendMaintenanceHistory(ctx context.Context, roomID string, e models.MaintenanceEntry) error {
	room, err := r.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	history, err := marshalHistory(append(room.MaintenanceHistory, e))
	if err != nil {
		return fmt.Errorf("marshal maintenance history: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE rooms SET maintenance_history = ? WHERE id = ?`, history, roomID)
	if err != nil {
		return fmt.Errorf("append maintenance history for room %q: %w", roomID, err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (models.Room, error) {
	var (
		room       models.Room
		guestName  sql.NullString
		guestIn    sql.NullTime
		guestOut   sql.NullTime
		cleaned    sql.NullTime
		occupied   sql.NullTime
		historyStr sql.NullString
	)
	if err := row.Scan(
		&room.ID,
		&room.PropertyID,
		&room.Number,
		&room.Floor,
		&room.Type,
		&room.Status,
		&guestName,
		&guestIn,
		&guestOut,
		&cleaned,
		&occupied,
		&historyStr,
		&room.DelayAlerted,
		&room.CreatedAt,
		&room.UpdatedAt,
	); err != nil {
		return models.Room{}, err
	}

	if guestName.Valid {
		room.CurrentGuest = &models.GuestStay{
			Name:     guestName.String,
			CheckIn:  guestIn.Time.UTC(),
			CheckOut: guestOut.Time.UTC(),
		}
	}
	if cleaned.Valid {
		t := cleaned.Time.UTC()
		room.LastCleaned = &t
	}
	if occupied.Valid {
		t := occupied.Time.UTC()
		room.LastOccupied = &t
	}
	if historyStr.Valid {
		history, err := unmarshalHistory(historyStr.String)
		if err != nil {
			return models.Room{}, err
		}
		room.MaintenanceHistory = history
	}
	room.CreatedAt = room.CreatedAt.UTC()
	room.UpdatedAt = room.UpdatedAt.UTC()
	return room, nil
}

// nullableTime converts an optional time to a driver-friendly value in UTC.
func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
