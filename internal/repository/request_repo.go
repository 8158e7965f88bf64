package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hotelops/internal/models"
)

type RequestSQLite struct {
	db *sql.DB
}

func NewRequestSQLite(db *sql.DB) *RequestSQLite { return &RequestSQLite{db: db} }

var _ RequestRepo = (*RequestSQLite)(nil)

const selectRequestColumns = `id, property_id, room_number, type, status, description, guest_name, assigned_to, created_at, updated_at`

func (r *RequestSQLite) Create(ctx context.Context, req models.ServiceRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO service_requests (`+selectRequestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.ID,
		req.PropertyID,
		req.RoomNumber,
		req.Type,
		req.Status,
		req.Description,
		req.GuestName,
		req.AssignedTo,
		req.CreatedAt.UTC(),
		req.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert service request for room %q: %w", req.RoomNumber, err)
	}
	return nil
}

func (r *RequestSQLite) GetByID(ctx context.Context, id string) (models.ServiceRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectRequestColumns+` FROM service_requests WHERE id = ?`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceRequest{}, ErrNotFound
		}
		return models.ServiceRequest{}, fmt.Errorf("select service request %q: %w", id, err)
	}
	return req, nil
}

func (r *RequestSQLite) List(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error) {
	q := `SELECT ` + selectRequestColumns + ` FROM service_requests WHERE property_id = ?`
	args := []any{propertyID}
	if status = strings.TrimSpace(status); status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	out := make([]models.ServiceRequest, 0, 32)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RequestSQLite) Update(ctx context.Context, req models.ServiceRequest) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE service_requests SET status = ?, description = ?, assigned_to = ?, updated_at = ?
		WHERE id = ?
	`,
		req.Status,
		req.Description,
		req.AssignedTo,
		req.UpdatedAt.UTC(),
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("update service request %q: %w", req.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRequest(row rowScanner) (models.ServiceRequest, error) {
	var (
		req        models.ServiceRequest
		desc       sql.NullString
		guest      sql.NullString
		assignedTo sql.NullString
	)
	if err := row.Scan(
		&req.ID,
		&req.PropertyID,
		&req.RoomNumber,
		&req.Type,
		&req.Status,
		&desc,
		&guest,
		&assignedTo,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return models.ServiceRequest{}, err
	}
	req.Description = desc.String
	req.GuestName = guest.String
	req.AssignedTo = assignedTo.String
	req.CreatedAt = req.CreatedAt.UTC()
	req.UpdatedAt = req.UpdatedAt.UTC()
	return req, nil
}
