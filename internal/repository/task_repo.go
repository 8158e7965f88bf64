package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hotelops/internal/models"

	"github.com/google/uuid"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

var _ TaskRepo = (*TaskSQLite)(nil)

// AppendCleaning inserts a cleaning task. Missing ID/CreatedAt are filled in.
func (r *TaskSQLite) AppendCleaning(ctx context.Context, t models.CleaningTask) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cleaning_tasks (id, property_id, room_id, room_number, status, priority, type, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		t.PropertyID,
		t.RoomID,
		t.RoomNumber,
		t.Status,
		t.Priority,
		t.Type,
		t.Notes,
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cleaning task for room %q: %w", t.RoomNumber, err)
	}
	return nil
}

// AppendMaintenance inserts a maintenance record. Missing ID/timestamps are filled in.
func (r *TaskSQLite) AppendMaintenance(ctx context.Context, m models.MaintenanceRecord) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	} else {
		m.CreatedAt = m.CreatedAt.UTC()
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	} else {
		m.UpdatedAt = m.UpdatedAt.UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO maintenance_records (id, property_id, room_id, type, status, description, priority, scheduled_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID,
		m.PropertyID,
		m.RoomID,
		m.Type,
		m.Status,
		m.Description,
		m.Priority,
		m.ScheduledDate.UTC(),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance record for room %q: %w", m.RoomID, err)
	}
	return nil
}

// ListCleaning returns cleaning tasks for a property, optionally filtered by status.
func (r *TaskSQLite) ListCleaning(ctx context.Context, propertyID, status string) ([]models.CleaningTask, error) {
	q := `SELECT id, property_id, room_id, room_number, status, priority, type, notes, created_at
		FROM cleaning_tasks WHERE property_id = ?`
	args := []any{propertyID}
	if status = strings.TrimSpace(status); status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list cleaning tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.CleaningTask, 0, 32)
	for rows.Next() {
		var t models.CleaningTask
		var notes sql.NullString
		if err := rows.Scan(&t.ID, &t.PropertyID, &t.RoomID, &t.RoomNumber, &t.Status, &t.Priority, &t.Type, &notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Notes = notes.String
		t.CreatedAt = t.CreatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMaintenance returns maintenance records for a property, newest first.
func (r *TaskSQLite) ListMaintenance(ctx context.Context, propertyID string) ([]models.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, property_id, room_id, type, status, description, priority, scheduled_date, created_at, updated_at
		FROM maintenance_records WHERE property_id = ? ORDER BY created_at DESC
	`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	defer rows.Close()

	out := make([]models.MaintenanceRecord, 0, 32)
	for rows.Next() {
		var m models.MaintenanceRecord
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.RoomID, &m.Type, &m.Status, &m.Description, &m.Priority, &m.ScheduledDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.ScheduledDate = m.ScheduledDate.UTC()
		m.CreatedAt = m.CreatedAt.UTC()
		m.UpdatedAt = m.UpdatedAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
