package handlers

import (
	"context"
	"net/http"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int
	signUpErr   error
	token       string
	tokenErr    error
	parseClaims *service.TokenClaims
	parseErr    error

	lastSignUp     service.SignUpParams
	lastParseToken string
}

func (m *mockAuth) SignUp(p service.SignUpParams) (int, error) {
	m.lastSignUp = p
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.token, m.tokenErr
}
func (m *mockAuth) ParseToken(accessToken string) (*service.TokenClaims, error) {
	m.lastParseToken = accessToken
	return m.parseClaims, m.parseErr
}

type mockRooms struct {
	room    models.Room
	rooms   []models.Room
	err     error
	listErr error

	lastAdd      service.AddRoomParams
	lastCheckIn  service.CheckInParams
	lastRoomID   string
	lastStatus   string
	lastDesc     string
	listCalls    int
	checkOutHits int
}

func (m *mockRooms) AddRoom(ctx context.Context, p service.AddRoomParams) (models.Room, error) {
	m.lastAdd = p
	return m.room, m.err
}
func (m *mockRooms) GetRoom(ctx context.Context, id string) (models.Room, error) {
	m.lastRoomID = id
	return m.room, m.err
}
func (m *mockRooms) ListRooms(ctx context.Context, propertyID string) ([]models.Room, error) {
	m.listCalls++
	return m.rooms, m.listErr
}
func (m *mockRooms) CheckIn(ctx context.Context, p service.CheckInParams) (models.Room, error) {
	m.lastCheckIn = p
	return m.room, m.err
}
func (m *mockRooms) CheckOut(ctx context.Context, roomID string) (models.Room, error) {
	m.lastRoomID = roomID
	m.checkOutHits++
	return m.room, m.err
}
func (m *mockRooms) MarkClean(ctx context.Context, roomID string) (models.Room, error) {
	m.lastRoomID = roomID
	return m.room, m.err
}
func (m *mockRooms) SetMaintenance(ctx context.Context, roomID, description string) (models.Room, error) {
	m.lastRoomID = roomID
	m.lastDesc = description
	return m.room, m.err
}
func (m *mockRooms) UpdateRoomStatus(ctx context.Context, roomID, status string) (models.Room, error) {
	m.lastRoomID = roomID
	m.lastStatus = status
	return m.room, m.err
}

type mockLifecycle struct {
	err           error
	evaluateCalls int
	lastProperty  string
}

func (m *mockLifecycle) EvaluateProperty(ctx context.Context, propertyID string) error {
	m.evaluateCalls++
	m.lastProperty = propertyID
	return m.err
}
func (m *mockLifecycle) Run(ctx context.Context, tick time.Duration) {}

type mockRequests struct {
	request service.RequestParams
	resp    models.ServiceRequest
	list    []models.ServiceRequest
	err     error
}

func (m *mockRequests) CreateRequest(ctx context.Context, p service.RequestParams) (models.ServiceRequest, error) {
	m.request = p
	return m.resp, m.err
}
func (m *mockRequests) ListRequests(ctx context.Context, propertyID, status string) ([]models.ServiceRequest, error) {
	return m.list, m.err
}
func (m *mockRequests) UpdateRequest(ctx context.Context, id, status, assignedTo string) (models.ServiceRequest, error) {
	return m.resp, m.err
}

type mockStaff struct {
	member models.StaffMember
	list   []models.StaffMember
	err    error
}

func (m *mockStaff) CreateStaff(ctx context.Context, p service.StaffParams) (models.StaffMember, error) {
	return m.member, m.err
}
func (m *mockStaff) ListStaff(ctx context.Context, propertyID string) ([]models.StaffMember, error) {
	return m.list, m.err
}
func (m *mockStaff) UpdateStaff(ctx context.Context, id string, p service.StaffParams) (models.StaffMember, error) {
	return m.member, m.err
}
func (m *mockStaff) DeleteStaff(ctx context.Context, id string) error {
	return m.err
}

type mockInventory struct {
	item models.InventoryItem
	list []models.InventoryItem
	err  error

	lastAdjustID    string
	lastAdjustDelta int
}

func (m *mockInventory) CreateItem(ctx context.Context, p service.InventoryParams) (models.InventoryItem, error) {
	return m.item, m.err
}
func (m *mockInventory) ListItems(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return m.list, m.err
}
func (m *mockInventory) AdjustItem(ctx context.Context, id string, delta int) error {
	m.lastAdjustID = id
	m.lastAdjustDelta = delta
	return m.err
}
func (m *mockInventory) ListLowStock(ctx context.Context, propertyID string) ([]models.InventoryItem, error) {
	return m.list, m.err
}

type mockNotifications struct {
	list []models.Notification
	err  error

	lastRole   string
	lastUnread bool
	lastReadID string
}

func (m *mockNotifications) ListNotifications(ctx context.Context, propertyID, role string, unreadOnly bool) ([]models.Notification, error) {
	m.lastRole = role
	m.lastUnread = unreadOnly
	return m.list, m.err
}
func (m *mockNotifications) MarkNotificationRead(ctx context.Context, id string) error {
	m.lastReadID = id
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// claimsFor builds a mockAuth whose ParseToken always yields the given
// role and property.
func claimsFor(role, propertyID string) *mockAuth {
	return &mockAuth{parseClaims: &service.TokenClaims{
		UserID:     1,
		Role:       role,
		PropertyID: propertyID,
	}}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
