package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/repository"

	"github.com/google/uuid"
)

// RequestParams describes a new guest service request.
type RequestParams struct {
	PropertyID  string
	RoomNumber  string
	Type        string // towels | cleaning | maintenance | amenities
	Description string
	GuestName   string
}

type RequestService struct {
	requests      repository.RequestRepo
	notifications repository.NotificationRepo
}

func NewRequestService(requests repository.RequestRepo, notifications repository.NotificationRepo) *RequestService {
	return &RequestService{requests: requests, notifications: notifications}
}

func (s *RequestService) CreateRequest(ctx context.Context, p RequestParams) (models.ServiceRequest, error) {
	if strings.TrimSpace(p.RoomNumber) == "" {
		return models.ServiceRequest{}, errors.New("room number is required")
	}
	switch p.Type {
	case models.RequestTowels, models.RequestCleaning, models.RequestMaintenance, models.RequestAmenities:
	default:
		return models.ServiceRequest{}, fmt.Errorf("invalid request type %q", p.Type)
	}

	now := time.Now().UTC()
	req := models.ServiceRequest{
		ID:          uuid.NewString(),
		PropertyID:  p.PropertyID,
		RoomNumber:  p.RoomNumber,
		Type:        p.Type,
		Status:      models.RequestPending,
		Description: p.Description,
		GuestName:   p.GuestName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return models.ServiceRequest{}, err
	}

	// Notify staff; a sink failure does not fail the request itself.
	_ = s.notifications.Append(ctx, notifyNewRequest(req))
	return req, nil
}

func (s *RequestService) ListRequests(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error) {
	if status != "" {
		switch status {
		case models.RequestPending, models.RequestInProgress, models.RequestCompleted:
		default:
			return nil, fmt.Errorf("invalid request status %q", status)
		}
	}
	return s.requests.List(ctx, propertyID, status)
}

func (s *RequestService) UpdateRequest(ctx context.Context, id, status, assignedTo string) (models.ServiceRequest, error) {
	switch status {
	case models.RequestPending, models.RequestInProgress, models.RequestCompleted:
	default:
		return models.ServiceRequest{}, fmt.Errorf("invalid request status %q", status)
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	req.Status = status
	if assignedTo != "" {
		req.AssignedTo = assignedTo
	}
	req.UpdatedAt = time.Now().UTC()
	if err := s.requests.Update(ctx, req); err != nil {
		return models.ServiceRequest{}, err
	}
	return req, nil
}
