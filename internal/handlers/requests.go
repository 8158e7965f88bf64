package handlers

import (
	"errors"
	"net/http"

	"hotelops/internal/service"

	"github.com/gin-gonic/gin"
)

type createRequestBody struct {
	RoomNumber  string `json:"room_number" binding:"required"`
	Type        string `json:"type" binding:"required"` // towels | cleaning | maintenance | amenities
	Description string `json:"description,omitempty"`
	GuestName   string `json:"guest_name,omitempty"`
}

type updateRequestBody struct {
	Status     string `json:"status" binding:"required"` // pending | in_progress | completed
	AssignedTo string `json:"assigned_to,omitempty"`
}

// @Summary      List service requests
// @Tags         requests
// @Produce      json
// @Param        status  query  string  false  "Filter by status"  Enums(pending,in_progress,completed)
// @Success      200  {object}  map[string]interface{}  "count, requests"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/requests [get]
// @Security     BearerAuth
func (h *Handler) listRequests(c *gin.Context) {
	requests, err := h.services.Requests.ListRequests(c.Request.Context(), propertyID(c), c.Query("status"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load requests", "requests_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(requests),
		"requests": requests,
	})
}

// @Summary      Create a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  createRequestBody  true  "Request payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/requests [post]
// @Security     BearerAuth
func (h *Handler) createRequest(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	req, err := h.services.Requests.CreateRequest(c.Request.Context(), service.RequestParams{
		PropertyID:  propertyID(c),
		RoomNumber:  body.RoomNumber,
		Type:        body.Type,
		Description: body.Description,
		GuestName:   body.GuestName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// @Summary      Update a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Request ID"
// @Param        body  body  updateRequestBody  true  "Status payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/requests/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateRequest(c *gin.Context) {
	var body updateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	req, err := h.services.Requests.UpdateRequest(c.Request.Context(), c.Param("id"), body.Status, body.AssignedTo)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}
