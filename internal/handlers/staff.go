package handlers

import (
	"errors"
	"net/http"
	"time"

	"hotelops/internal/service"

	"github.com/gin-gonic/gin"
)

type staffBody struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Role      string `json:"role" binding:"required"` // admin | manager | front_desk | housekeeping | maintenance
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
}

func (b staffBody) toParams(property string) (service.StaffParams, error) {
	p := service.StaffParams{
		PropertyID: property,
		Name:       b.Name,
		Email:      b.Email,
		Role:       b.Role,
		Phone:      b.Phone,
		Active:     b.Active,
	}
	if b.StartDate != "" {
		start, err := time.Parse(layoutDate, b.StartDate)
		if err != nil {
			return service.StaffParams{}, errors.New("invalid start_date; use YYYY-MM-DD")
		}
		p.StartDate = start
	}
	return p, nil
}

// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, staff"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/staff [get]
// @Security     BearerAuth
func (h *Handler) listStaff(c *gin.Context) {
	staff, err := h.services.Staff.ListStaff(c.Request.Context(), propertyID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load staff", "staff_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(staff),
		"staff": staff,
	})
}

// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  staffBody  true  "Staff payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/staff [post]
// @Security     BearerAuth
func (h *Handler) createStaff(c *gin.Context) {
	var body staffBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params, err := body.toParams(propertyID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.services.Staff.CreateStaff(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        id    path  string     true  "Staff ID"
// @Param        body  body  staffBody  true  "Staff payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/staff/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateStaff(c *gin.Context) {
	var body staffBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params, err := body.toParams(propertyID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.services.Staff.UpdateStaff(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary      Remove a staff member
// @Tags         staff
// @Produce      json
// @Param        id  path  string  true  "Staff ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/staff/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteStaff(c *gin.Context) {
	if err := h.services.Staff.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete staff member", "staff_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
