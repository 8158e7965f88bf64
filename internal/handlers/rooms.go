package handlers

import (
	"errors"
	"net/http"
	"time"

	"hotelops/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListRooms       = "failed to load rooms"
	errGetRoom         = "failed to load room"
	errInvalidBodyPref = "invalid body: "

	layoutDate = "2006-01-02"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// roomOpError maps room operation failures to HTTP codes: unknown room 404,
// rejected transition or number collision 409, anything else a bad request.
func (h *Handler) roomOpError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrDuplicateNumber):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// Request DTO for adding a room.
type addRoomRequest struct {
	Number string `json:"number" binding:"required"`
	Floor  int    `json:"floor" binding:"required"`
	Type   string `json:"type" binding:"required"` // standard | deluxe | suite
}

// Request DTO for check-in. Dates accept YYYY-MM-DD.
type checkInRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
}

type maintenanceRequest struct {
	Description string `json:"description,omitempty"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"` // vacant | cleaning | maintenance
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      List rooms
// @Description  Returns the property's room snapshot; expired checkouts and cleaning delays are folded in before the list is returned.
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, rooms"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/rooms [get]
// @Security     BearerAuth
func (h *Handler) listRooms(c *gin.Context) {
	ctx := c.Request.Context()
	property := propertyID(c)

	// Automatic transitions run on every snapshot read.
	if err := h.services.Lifecycle.EvaluateProperty(ctx, property); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListRooms, "rooms_evaluate_failed", err)
		return
	}

	rooms, err := h.services.Rooms.ListRooms(ctx, property)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListRooms, "rooms_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(rooms),
		"rooms": rooms,
	})
}

// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id  path  string  true  "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/rooms/{id} [get]
// @Security     BearerAuth
func (h *Handler) getRoom(c *gin.Context) {
	room, err := h.services.Rooms.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetRoom, "room_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Add a room
// @Description  Creates a vacant room. The room number must be unique within the property.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body  addRoomRequest  true  "Room payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/rooms [post]
// @Security     BearerAuth
func (h *Handler) addRoom(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	room, err := h.services.Rooms.AddRoom(c.Request.Context(), service.AddRoomParams{
		PropertyID: propertyID(c),
		Number:     req.Number,
		Floor:      req.Floor,
		Type:       req.Type,
	})
	if err != nil {
		h.roomOpError(c, err, "room_add_failed")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// @Summary      Check a guest in
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Room ID"
// @Param        body  body  checkInRequest  true  "Guest payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "room is not vacant"
// @Router       /api/v1/rooms/{id}/check-in [post]
// @Security     BearerAuth
func (h *Handler) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	checkInDate, err := time.Parse(layoutDate, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date; use YYYY-MM-DD"})
		return
	}
	checkOutDate, err := time.Parse(layoutDate, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date; use YYYY-MM-DD"})
		return
	}

	room, err := h.services.Rooms.CheckIn(c.Request.Context(), service.CheckInParams{
		RoomID:    c.Param("id"),
		GuestName: req.GuestName,
		CheckIn:   checkInDate,
		CheckOut:  checkOutDate,
	})
	if err != nil {
		h.roomOpError(c, err, "room_check_in_failed")
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Check a guest out
// @Description  Moves the room to cleaning and queues a high-priority cleaning task.
// @Tags         rooms
// @Produce      json
// @Param        id  path  string  true  "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string  "room is not occupied"
// @Router       /api/v1/rooms/{id}/check-out [post]
// @Security     BearerAuth
func (h *Handler) checkOut(c *gin.Context) {
	room, err := h.services.Rooms.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.roomOpError(c, err, "room_check_out_failed")
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Mark a room clean
// @Tags         rooms
// @Produce      json
// @Param        id  path  string  true  "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string  "room is not being cleaned"
// @Router       /api/v1/rooms/{id}/clean [post]
// @Security     BearerAuth
func (h *Handler) markClean(c *gin.Context) {
	room, err := h.services.Rooms.MarkClean(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.roomOpError(c, err, "room_mark_clean_failed")
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Place a room under maintenance
// @Description  Allowed from any status; schedules an inspection record.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string              true   "Room ID"
// @Param        body  body  maintenanceRequest  false  "Optional description"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/rooms/{id}/maintenance [post]
// @Security     BearerAuth
func (h *Handler) setMaintenance(c *gin.Context) {
	var req maintenanceRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	room, err := h.services.Rooms.SetMaintenance(c.Request.Context(), c.Param("id"), req.Description)
	if err != nil {
		h.roomOpError(c, err, "room_set_maintenance_failed")
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Update room status
// @Description  Generic status change; occupied must go through check-in.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Room ID"
// @Param        body  body  statusRequest  true  "Target status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/rooms/{id}/status [patch]
// @Security     BearerAuth
func (h *Handler) updateRoomStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	room, err := h.services.Rooms.UpdateRoomStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.roomOpError(c, err, "room_update_status_failed")
		return
	}
	c.JSON(http.StatusOK, room)
}
