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

// ErrInsufficientStock rejects an adjustment that would drive stock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryParams describes a stock item.
type InventoryParams struct {
	PropertyID string
	Name       string
	Category   string
	Quantity   int
	MinStock   int
	Unit       string
}

type InventoryService struct {
	inventory repository.InventoryRepo
}

func NewInventoryService(inventory repository.InventoryRepo) *InventoryService {
	return &InventoryService{inventory: inventory}
}

func (s *InventoryService) CreateItem(ctx context.Context, p InventoryParams) (models.InventoryItem, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.InventoryItem{}, errors.New("item name is required")
	}
	if p.Quantity < 0 || p.MinStock < 0 {
		return models.InventoryItem{}, errors.New("quantity and min stock must be non-negative")
	}

	now := time.Now().UTC()
	item := models.InventoryItem{
		ID:         uuid.NewString(),
		PropertyID: p.PropertyID,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		MinStock:   p.MinStock,
		Unit:       p.Unit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.inventory.Create(ctx, item); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return s.inventory.List(ctx, propertyID)
}

func (s *InventoryService) AdjustItem(ctx context.Context, id string, delta int) error {
	if delta == 0 {
		return nil
	}
	ok, err := s.inventory.Adjust(ctx, id, delta, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: cannot adjust item %s by %d", ErrInsufficientStock, id, delta)
	}
	return nil
}

func (s *InventoryService) ListLowStock(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return s.inventory.ListLowStock(ctx, propertyID)
}
