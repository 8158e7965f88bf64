package service

import (
	"context"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/repository"
)

type NotificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListNotifications(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error) {
	return s.notifications.List(ctx, propertyID, role, unreadOnly)
}

// MarkNotificationRead stamps read_at. Re-reading an already-read
// notification is not an error.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := s.notifications.MarkRead(ctx, id, time.Now().UTC())
	return err
}
