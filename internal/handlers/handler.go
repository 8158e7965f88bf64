package handlers

import (
	"hotelops/internal/logger"
	"hotelops/internal/models"
	"hotelops/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live room board (HTTP upgrade) — same port
	router.GET("/ws", h.identityMiddleware, h.wsRoomBoard)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.identityMiddleware)
	{
		h.registerRoomRoutes(api)
		h.registerRequestRoutes(api)
		h.registerStaffRoutes(api)
		h.registerInventoryRoutes(api)
		h.registerNotificationRoutes(api)
	}
}

func (h *Handler) registerRoomRoutes(api *gin.RouterGroup) {
	rooms := api.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.GET("/:id", h.getRoom)
		rooms.POST("", h.requireRoles(models.RoleAdmin, models.RoleManager), h.addRoom)
		rooms.POST("/:id/check-in", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleFrontDesk), h.checkIn)
		rooms.POST("/:id/check-out", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleFrontDesk), h.checkOut)
		rooms.POST("/:id/clean", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleHousekeeping), h.markClean)
		rooms.POST("/:id/maintenance", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleMaintenance), h.setMaintenance)
		rooms.PATCH("/:id/status", h.requireRoles(models.RoleAdmin, models.RoleManager), h.updateRoomStatus)
	}
}

func (h *Handler) registerRequestRoutes(api *gin.RouterGroup) {
	requests := api.Group("/requests")
	{
		requests.GET("", h.listRequests)
		requests.POST("", h.createRequest)
		requests.PATCH("/:id", h.updateRequest)
	}
}

func (h *Handler) registerStaffRoutes(api *gin.RouterGroup) {
	staff := api.Group("/staff", h.requireRoles(models.RoleAdmin, models.RoleManager))
	{
		staff.GET("", h.listStaff)
		staff.POST("", h.createStaff)
		staff.PUT("/:id", h.updateStaff)
		staff.DELETE("/:id", h.deleteStaff)
	}
}

func (h *Handler) registerInventoryRoutes(api *gin.RouterGroup) {
	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		inventory.GET("/low-stock", h.listLowStock)
		inventory.POST("", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleHousekeeping), h.createInventoryItem)
		inventory.POST("/:id/adjust", h.requireRoles(models.RoleAdmin, models.RoleManager, models.RoleHousekeeping), h.adjustInventoryItem)
	}
}

func (h *Handler) registerNotificationRoutes(api *gin.RouterGroup) {
	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markNotificationRead)
	}
}
