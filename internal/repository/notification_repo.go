package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotelops/internal/models"

	"github.com/google/uuid"
)

type NotificationSQLite struct {
	db *sql.DB
}

func NewNotificationSQLite(db *sql.DB) *NotificationSQLite {
	return &NotificationSQLite{db: db}
}

var _ NotificationRepo = (*NotificationSQLite)(nil)

// Append inserts a notification. Missing ID/CreatedAt are filled in.
func (r *NotificationSQLite) Append(ctx context.Context, n models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	} else {
		n.CreatedAt = n.CreatedAt.UTC()
	}

	roles, err := json.Marshal(n.RecipientRoles)
	if err != nil {
		return fmt.Errorf("marshal recipient roles: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, property_id, type, title, message, recipient_roles, related_id, created_at, read_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`,
		n.ID,
		n.PropertyID,
		n.Type,
		n.Title,
		n.Message,
		string(roles),
		n.RelatedID,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification %q: %w", n.Title, err)
	}
	return nil
}

// List returns notifications for a property, optionally narrowed to a role
// and to unread ones, newest first. Role filtering matches against the JSON
// array of recipient roles.
func (r *NotificationSQLite) List(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error) {
	var (
		conds = []string{"property_id = ?"}
		args  = []any{propertyID}
	)
	if role = strings.TrimSpace(role); role != "" {
		conds = append(conds, "recipient_roles LIKE ?")
		args = append(args, `%"`+role+`"%`)
	}
	if unreadOnly {
		conds = append(conds, "read_at IS NULL")
	}

	q := `SELECT id, property_id, type, title, message, recipient_roles, related_id, created_at, read_at
		FROM notifications WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]models.Notification, 0, 32)
	for rows.Next() {
		var (
			n        models.Notification
			rolesStr string
			related  sql.NullString
			readAt   sql.NullTime
		)
		if err := rows.Scan(&n.ID, &n.PropertyID, &n.Type, &n.Title, &n.Message, &rolesStr, &related, &n.CreatedAt, &readAt); err != nil {
			return nil, err
		}
		if rolesStr != "" {
			if err := json.Unmarshal([]byte(rolesStr), &n.RecipientRoles); err != nil {
				return nil, fmt.Errorf("unmarshal recipient roles: %w", err)
			}
		}
		n.RelatedID = related.String
		n.CreatedAt = n.CreatedAt.UTC()
		if readAt.Valid {
			t := readAt.Time.UTC()
			n.ReadAt = &t
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead stamps read_at once; a second call reports false.
func (r *NotificationSQLite) MarkRead(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read_at = ? WHERE id = ? AND read_at IS NULL`,
		at.UTC(), id)
	if err != nil {
		return false, fmt.Errorf("mark notification %q read: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
