package repository

import (
	"yoldas/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	PlaceOrder(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIdempotencyKey(key string) (*models.Order, error)
	GetByRestaurantID(restaurantID uint) ([]models.Order, error)
	GetItems(orderID uint) ([]models.OrderItem, error)
	UpdateStatus(orderID uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// PlaceOrder inserts the order header and all of its items in one
// transaction. Any failure rolls everything back, so a partial order is
// never visible to readers; the connection is released on every path.
func (r *orderRepository) PlaceOrder(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIdempotencyKey(key string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("idempotency_key = ?", key).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByRestaurantID(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *orderRepository) UpdateStatus(orderID uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error
}
