package service

import (
	"fmt"

	"hotelops/internal/models"
)

// Notification templates for lifecycle events. Content and recipient routing
// follow the front-of-house conventions: housekeeping hears about rooms that
// need work, the front desk hears about rooms ready to sell.

func notifyCheckIn(room models.Room, guestName string) models.Notification {
	return models.Notification{
		PropertyID:     room.PropertyID,
		Type:           models.NotifyCheckIn,
		Title:          "New Check-In",
		Message:        fmt.Sprintf("%s checked into Room %s", guestName, room.Number),
		RecipientRoles: []string{models.RoleFrontDesk, models.RoleHousekeeping},
		RelatedID:      room.ID,
	}
}

func notifyCheckOut(room models.Room) models.Notification {
	return models.Notification{
		PropertyID:     room.PropertyID,
		Type:           models.NotifyCheckOut,
		Title:          "Room Ready for Cleaning",
		Message:        fmt.Sprintf("Room %s has been checked out and needs cleaning", room.Number),
		RecipientRoles: []string{models.RoleHousekeeping},
		RelatedID:      room.ID,
	}
}

func notifyRoomCleaned(room models.Room) models.Notification {
	return models.Notification{
		PropertyID:     room.PropertyID,
		Type:           models.NotifyMaintenance,
		Title:          "Room Cleaned",
		Message:        fmt.Sprintf("Room %s has been cleaned and is ready for guests", room.Number),
		RecipientRoles: []string{models.RoleFrontDesk},
		RelatedID:      room.ID,
	}
}

func notifyCleaningDelay(room models.Room) models.Notification {
	return models.Notification{
		PropertyID:     room.PropertyID,
		Type:           models.NotifyCleaningDelay,
		Title:          "Cleaning Delay Alert",
		Message:        fmt.Sprintf("Room %s has been waiting for cleaning for over 24 hours", room.Number),
		RecipientRoles: []string{models.RoleHousekeeping, models.RoleManager},
		RelatedID:      room.ID,
	}
}

func notifyNewRequest(req models.ServiceRequest) models.Notification {
	return models.Notification{
		PropertyID:     req.PropertyID,
		Type:           models.NotifyRequest,
		Title:          "New Service Request",
		Message:        fmt.Sprintf("Room %s requested %s", req.RoomNumber, req.Type),
		RecipientRoles: []string{models.RoleHousekeeping, models.RoleFrontDesk},
		RelatedID:      req.ID,
	}
}
