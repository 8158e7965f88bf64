package service

import (
	"context"
	"testing"

	"hotelops/internal/models"
	"hotelops/internal/repository"
)

type fakeRequestRepo struct {
	requests map[string]models.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]models.ServiceRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, r models.ServiceRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (models.ServiceRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return models.ServiceRequest{}, repository.ErrNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, r := range f.requests {
		if r.PropertyID == propertyID && (status == "" || r.Status == status) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, r models.ServiceRequest) error {
	if _, ok := f.requests[r.ID]; !ok {
		return repository.ErrNotFound
	}
	f.requests[r.ID] = r
	return nil
}

func TestRequestService_Create_PendingWithNotification(t *testing.T) {
	repo := newFakeRequestRepo()
	notifications := &fakeNotificationRepo{}
	svc := NewRequestService(repo, notifications)

	req, err := svc.CreateRequest(context.Background(), RequestParams{
		PropertyID: "prop-1", RoomNumber: "101", Type: models.RequestTowels, GuestName: "Alice",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Status != models.RequestPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
	if got := notifications.byType(models.NotifyRequest); len(got) != 1 {
		t.Fatalf("expected 1 request notification, got %d", len(got))
	}
}

func TestRequestService_Create_RejectsUnknownType(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), &fakeNotificationRepo{})
	_, err := svc.CreateRequest(context.Background(), RequestParams{
		PropertyID: "prop-1", RoomNumber: "101", Type: "massage",
	})
	if err == nil {
		t.Fatalf("expected error for unknown request type")
	}
}

func TestRequestService_Update_AssignsAndAdvances(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, &fakeNotificationRepo{})

	req, err := svc.CreateRequest(context.Background(), RequestParams{
		PropertyID: "prop-1", RoomNumber: "101", Type: models.RequestCleaning,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateRequest(context.Background(), req.ID, models.RequestInProgress, "staff-7")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.RequestInProgress || updated.AssignedTo != "staff-7" {
		t.Fatalf("unexpected request after update: %+v", updated)
	}
}

func TestRequestService_Update_RejectsBadStatus(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), &fakeNotificationRepo{})
	if _, err := svc.UpdateRequest(context.Background(), "any", "escalated", ""); err == nil {
		t.Fatalf("expected error for bad status")
	}
}
