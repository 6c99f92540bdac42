package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yoldas/internal/models"
	"yoldas/internal/services"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(req *services.PlaceOrderRequest) (uint, error) {
	args := m.Called(req)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockOrderService) ListByRestaurant(restaurantID uint) ([]models.Order, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) GetItems(orderID uint) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(orderID uint, status string) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func newOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(svc)
	router := gin.New()
	router.POST("/api/orders", h.PlaceOrder)
	router.GET("/api/orders", h.ListOrders)
	router.PATCH("/api/orders/:orderId", h.ChangeStatus)
	return router
}

func TestPlaceOrderEndpoint(t *testing.T) {
	mockSvc := new(MockOrderService)
	mockSvc.On("PlaceOrder", mock.AnythingOfType("*services.PlaceOrderRequest")).Return(uint(17), nil)

	router := newOrderRouter(mockSvc)
	body := `{
		"restaurantId": 3,
		"items": [{"id": 7, "qty": 2, "price": 10.0}],
		"totalAmount": 20.0,
		"customerName": "Jeren",
		"customerAddress": "12 Magtymguly Ave"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"orderId": 17}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestPlaceOrderEndpointRejectsInvalidPayload(t *testing.T) {
	mockSvc := new(MockOrderService)
	mockSvc.On("PlaceOrder", mock.Anything).Return(uint(0), services.ErrInvalidOrder)

	router := newOrderRouter(mockSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing order data")
}

func TestPlaceOrderEndpointReportsPersistenceFailure(t *testing.T) {
	mockSvc := new(MockOrderService)
	mockSvc.On("PlaceOrder", mock.Anything).Return(uint(0), assert.AnError)

	router := newOrderRouter(mockSvc)
	body := `{
		"restaurantId": 3,
		"items": [{"id": 7, "price": 10.0}],
		"totalAmount": 10.0,
		"customerName": "Jeren",
		"customerAddress": "12 Magtymguly Ave"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListOrdersRequiresRestaurantID(t *testing.T) {
	router := newOrderRouter(new(MockOrderService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeStatusRequiresStatusQuery(t *testing.T) {
	mockSvc := new(MockOrderService)
	router := newOrderRouter(mockSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/17", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockSvc.On("UpdateStatus", uint(17), "preparing").Return(nil)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/orders/17?status=preparing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
