package repository_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestNotificationSQLite_Append_MarshalsRolesAndFillsDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewNotificationSQLite(db)

	isNonEmptyString := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		return ok && s != ""
	})
	isRecentUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(
			isNonEmptyString, // generated id
			"prop-1",
			models.NotifyCheckOut,
			"Room Ready for Cleaning",
			"Room 101 has been checked out and needs cleaning",
			`["housekeeping"]`,
			"room-1",
			isRecentUTC, // generated created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), models.Notification{
		PropertyID:     "prop-1",
		Type:           models.NotifyCheckOut,
		Title:          "Room Ready for Cleaning",
		Message:        "Room 101 has been checked out and needs cleaning",
		RecipientRoles: []string{models.RoleHousekeeping},
		RelatedID:      "room-1",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNotificationSQLite_List_FiltersByRoleAndUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewNotificationSQLite(db)

	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "property_id", "type", "title", "message", "recipient_roles", "related_id", "created_at", "read_at",
	}).AddRow(
		"n-1", "prop-1", models.NotifyCleaningDelay, "Cleaning Delay Alert",
		"Room 101 has been waiting for cleaning for over 24 hours",
		`["housekeeping","manager"]`, "room-1", now, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("recipient_roles LIKE ?")).
		WithArgs("prop-1", `%"housekeeping"%`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "prop-1", models.RoleHousekeeping, true)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	n := got[0]
	if len(n.RecipientRoles) != 2 || n.RecipientRoles[1] != models.RoleManager {
		t.Fatalf("roles not unmarshaled: %v", n.RecipientRoles)
	}
	if n.ReadAt != nil {
		t.Fatalf("expected unread notification, got readAt=%v", n.ReadAt)
	}
}

func TestNotificationSQLite_MarkRead_OnlyOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewNotificationSQLite(db)

	at := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read_at = ?")).
		WithArgs(isExactUTC(at), "n-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read_at = ?")).
		WithArgs(isExactUTC(at), "n-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkRead(context.Background(), "n-1", at)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !ok {
		t.Fatalf("first MarkRead() expected true")
	}

	ok, err = repo.MarkRead(context.Background(), "n-1", at)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if ok {
		t.Fatalf("second MarkRead() expected false")
	}
}
