package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelops/internal/models"
)

type StaffSQLite struct {
	db *sql.DB
}

func NewStaffSQLite(db *sql.DB) *StaffSQLite { return &StaffSQLite{db: db} }

var _ StaffRepo = (*StaffSQLite)(nil)

const selectStaffColumns = `id, property_id, name, email, role, phone, active, start_date, created_at, updated_at`

func (r *StaffSQLite) Create(ctx context.Context, s models.StaffMember) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO staff (`+selectStaffColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.ID,
		s.PropertyID,
		s.Name,
		s.Email,
		s.Role,
		s.Phone,
		s.Active,
		s.StartDate.UTC(),
		s.CreatedAt.UTC(),
		s.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert staff member %q: %w", s.Name, err)
	}
	return nil
}

func (r *StaffSQLite) GetByID(ctx context.Context, id string) (models.StaffMember, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectStaffColumns+` FROM staff WHERE id = ?`, id)
	s, err := scanStaff(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StaffMember{}, ErrNotFound
		}
		return models.StaffMember{}, fmt.Errorf("select staff member %q: %w", id, err)
	}
	return s, nil
}

func (r *StaffSQLite) List(ctx context.Context, propertyID string) ([]models.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectStaffColumns+` FROM staff WHERE property_id = ? ORDER BY name`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	out := make([]models.StaffMember, 0, 32)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StaffSQLite) Update(ctx context.Context, s models.StaffMember) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff SET name = ?, email = ?, role = ?, phone = ?, active = ?, updated_at = ?
		WHERE id = ?
	`,
		s.Name,
		s.Email,
		s.Role,
		s.Phone,
		s.Active,
		s.UpdatedAt.UTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("update staff member %q: %w", s.ID, err)
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

func (r *StaffSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete staff member %q: %w", id, err)
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

func scanStaff(row rowScanner) (models.StaffMember, error) {
	var (
		s     models.StaffMember
		phone sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.PropertyID,
		&s.Name,
		&s.Email,
		&s.Role,
		&phone,
		&s.Active,
		&s.StartDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return models.StaffMember{}, err
	}
	s.Phone = phone.String
	s.StartDate = s.StartDate.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
