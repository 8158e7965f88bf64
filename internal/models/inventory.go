package models

import "time"

// InventoryItem tracks stock of consumables (towels, toiletries, linen).
type InventoryItem struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category,omitempty"`
	Quantity   int       `json:"quantity"`
	MinStock   int       `json:"min_stock"` // restock threshold for the low-stock report
	Unit       string    `json:"unit,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
