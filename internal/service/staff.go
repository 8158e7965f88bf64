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

// StaffParams describes a roster entry.
type StaffParams struct {
	PropertyID string
	Name       string
	Email      string
	Role       string
	Phone      string
	Active     bool
	StartDate  time.Time
}

type StaffService struct {
	staff repository.StaffRepo
}

func NewStaffService(staff repository.StaffRepo) *StaffService {
	return &StaffService{staff: staff}
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleFrontDesk, models.RoleHousekeeping, models.RoleMaintenance:
		return true
	}
	return false
}

func (s *StaffService) CreateStaff(ctx context.Context, p StaffParams) (models.StaffMember, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.StaffMember{}, errors.New("staff name is required")
	}
	if !validRole(p.Role) {
		return models.StaffMember{}, fmt.Errorf("invalid role %q", p.Role)
	}

	now := time.Now().UTC()
	start := p.StartDate
	if start.IsZero() {
		start = now
	}
	member := models.StaffMember{
		ID:         uuid.NewString(),
		PropertyID: p.PropertyID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       p.Role,
		Phone:      p.Phone,
		Active:     true,
		StartDate:  start.UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return models.StaffMember{}, err
	}
	return member, nil
}

func (s *StaffService) ListStaff(ctx context.Context, propertyID string) ([]models.StaffMember, error) {
	return s.staff.List(ctx, propertyID)
}

func (s *StaffService) UpdateStaff(ctx context.Context, id string, p StaffParams) (models.StaffMember, error) {
	if !validRole(p.Role) {
		return models.StaffMember{}, fmt.Errorf("invalid role %q", p.Role)
	}

	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return models.StaffMember{}, err
	}
	member.Name = p.Name
	member.Email = p.Email
	member.Role = p.Role
	member.Phone = p.Phone
	member.Active = p.Active
	member.UpdatedAt = time.Now().UTC()
	if err := s.staff.Update(ctx, member); err != nil {
		return models.StaffMember{}, err
	}
	return member, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	return s.staff.Delete(ctx, id)
}
