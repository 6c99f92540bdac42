package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"yoldas/internal/cart"
	"yoldas/internal/models"
	"yoldas/internal/pricing"
	"yoldas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLine is one item of the placement payload. Price is the discounted
// unit price of the meal; the modifier deltas ride in Customizations and
// are folded into the stored item price.
type OrderLine struct {
	ID             uint                 `json:"id"`
	Qty            int                  `json:"qty"`
	Price          float64              `json:"price"`
	Customizations []cart.Customization `json:"customizations"`
}

type PlaceOrderRequest struct {
	RestaurantID    uint        `json:"restaurantId"`
	Items           []OrderLine `json:"items"`
	TotalAmount     *float64    `json:"totalAmount"`
	Total           *float64    `json:"total"` // legacy alias for totalAmount
	CustomerName    string      `json:"customerName"`
	CustomerAddress string      `json:"customerAddress"`
	IdempotencyKey  string      `json:"idempotencyKey"`
}

type OrderService interface {
	PlaceOrder(req *PlaceOrderRequest) (uint, error)
	ListByRestaurant(restaurantID uint) ([]models.Order, error)
	GetItems(orderID uint) ([]models.OrderItem, error)
	UpdateStatus(orderID uint, status string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// PlaceOrder validates the payload, then persists the order header and all
// line items in one transaction. A failed placement leaves zero trace and
// is never retried here; the caller keeps the cart and may resubmit.
func (s *orderService) PlaceOrder(req *PlaceOrderRequest) (uint, error) {
	total := req.TotalAmount
	if total == nil {
		total = req.Total
	}
	if req.RestaurantID == 0 || len(req.Items) == 0 || total == nil ||
		strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerAddress) == "" {
		return 0, ErrInvalidOrder
	}

	// The total is client-asserted over the line prices; recompute it and
	// reject anything beyond per-line rounding drift.
	var sum float64
	for _, item := range req.Items {
		sum += item.Price * float64(qtyOrOne(item.Qty))
	}
	if math.Abs(pricing.Round2(sum)-*total) > 0.01*float64(len(req.Items)) {
		return 0, ErrTotalMismatch
	}

	// A repeated submission with the same key returns the order it already
	// created instead of inserting a duplicate.
	if req.IdempotencyKey != "" {
		existing, err := s.orderRepo.GetByIdempotencyKey(req.IdempotencyKey)
		if err == nil {
			return existing.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	order := &models.Order{
		OrderNumber:     "ORD-" + uuid.New().String(),
		RestaurantID:    req.RestaurantID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		TotalAmount:     *total,
		ItemsCount:      len(req.Items),
		Status:          string(models.OrderPending),
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		order.IdempotencyKey = &key
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item := models.OrderItem{
			MealID: line.ID,
			Qty:    qtyOrOne(line.Qty),
			Price:  finalUnitPrice(line),
		}
		if len(line.Customizations) > 0 {
			snapshot, err := json.Marshal(line.Customizations)
			if err != nil {
				return 0, fmt.Errorf("failed to serialize customizations: %w", err)
			}
			text := string(snapshot)
			item.Customizations = &text
		}
		items = append(items, item)
	}

	if err := s.orderRepo.PlaceOrder(order, items); err != nil {
		return 0, fmt.Errorf("could not place order: %w", err)
	}
	return order.ID, nil
}

func (s *orderService) ListByRestaurant(restaurantID uint) ([]models.Order, error) {
	return s.orderRepo.GetByRestaurantID(restaurantID)
}

func (s *orderService) GetItems(orderID uint) ([]models.OrderItem, error) {
	return s.orderRepo.GetItems(orderID)
}

func (s *orderService) UpdateStatus(orderID uint, status string) error {
	if strings.TrimSpace(status) == "" {
		return errors.New("missing status")
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}

// finalUnitPrice captures the price an item is stored with: the line price
// plus its modifier deltas. It is never recomputed after placement.
func finalUnitPrice(line OrderLine) float64 {
	price := line.Price
	for _, c := range line.Customizations {
		price += c.PriceDelta
	}
	return pricing.Round2(price)
}

func qtyOrOne(qty int) int {
	if qty <= 0 {
		return 1
	}
	return qty
}
