package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OrderID uint `json:"order_id" gorm:"not null;index"`
	MealID  uint `json:"meal_id" gorm:"not null"`
	Qty     int  `json:"qty" gorm:"not null;default:1"`
	// Price is the final unit price including modifier deltas, captured at
	// order time and never recomputed afterwards.
	Price          float64        `json:"price" gorm:"not null"`
	Customizations *string        `json:"customizations" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
