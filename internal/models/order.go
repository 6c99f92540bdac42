package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	OrderNumber     string         `json:"order_number" gorm:"unique;not null"`
	RestaurantID    uint           `json:"restaurant_id" gorm:"not null;index"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerAddress string         `json:"customer_address" gorm:"not null"`
	TotalAmount     float64        `json:"total" gorm:"not null"`
	ItemsCount      int            `json:"items_count" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	IdempotencyKey  *string        `json:"-" gorm:"uniqueIndex"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

// Delivery stages are advisory: the store accepts any status string, these
// are the values the customer app steps through.
const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderCooking   OrderStatus = "cooking"
	OrderOnTheWay  OrderStatus = "on the way"
	OrderDelivered OrderStatus = "delivered"
)

// NextStatus returns the stage that follows s in the linear progression.
// Delivered is terminal; unknown statuses advance to preparing.
func NextStatus(s string) string {
	switch OrderStatus(s) {
	case OrderPending:
		return string(OrderPreparing)
	case OrderPreparing:
		return string(OrderCooking)
	case OrderCooking:
		return string(OrderOnTheWay)
	case OrderOnTheWay, OrderDelivered:
		return string(OrderDelivered)
	default:
		return string(OrderPreparing)
	}
}
