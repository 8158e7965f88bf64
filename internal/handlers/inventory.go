package handlers

import (
	"errors"
	"net/http"

	"hotelops/internal/service"

	"github.com/gin-gonic/gin"
)

type inventoryBody struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"min_stock"`
	Unit     string `json:"unit,omitempty"`
}

type adjustBody struct {
	Delta int `json:"delta" binding:"required"` // positive restocks, negative consumes
}

// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, items"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/inventory [get]
// @Security     BearerAuth
func (h *Handler) listInventory(c *gin.Context) {
	items, err := h.services.Inventory.ListItems(c.Request.Context(), propertyID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load inventory", "inventory_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

// @Summary      List low-stock inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, items"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/inventory/low-stock [get]
// @Security     BearerAuth
func (h *Handler) listLowStock(c *gin.Context) {
	items, err := h.services.Inventory.ListLowStock(c.Request.Context(), propertyID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load inventory", "inventory_low_stock_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

// @Summary      Add an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  inventoryBody  true  "Item payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/inventory [post]
// @Security     BearerAuth
func (h *Handler) createInventoryItem(c *gin.Context) {
	var body inventoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	item, err := h.services.Inventory.CreateItem(c.Request.Context(), service.InventoryParams{
		PropertyID: propertyID(c),
		Name:       body.Name,
		Category:   body.Category,
		Quantity:   body.Quantity,
		MinStock:   body.MinStock,
		Unit:       body.Unit,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Adjust inventory stock
// @Description  Applies a delta to the quantity; cannot drive stock negative.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string      true  "Item ID"
// @Param        body  body  adjustBody  true  "Adjustment payload"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "insufficient stock"
// @Router       /api/v1/inventory/{id}/adjust [post]
// @Security     BearerAuth
func (h *Handler) adjustInventoryItem(c *gin.Context) {
	var body adjustBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Inventory.AdjustItem(c.Request.Context(), c.Param("id"), body.Delta); err != nil {
		if errors.Is(err, service.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to adjust inventory", "inventory_adjust_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "adjusted"})
}
