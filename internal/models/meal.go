package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Meal struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	OwnerID      uint           `json:"owner_id" gorm:"not null"`
	Section      string         `json:"section" gorm:"default:'Main'"`
	Name         string         `json:"name" gorm:"not null"`
	Price        float64        `json:"price" gorm:"not null"`
	Photo        string         `json:"photo"`
	Discount     int            `json:"discount" gorm:"default:0"` // percent, 0-90
	OutOfStock   bool           `json:"out_of_stock" gorm:"default:false"`
	DailySpecial bool           `json:"daily_special" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// IsDrink reports whether the meal belongs to the drinks section. The
// section label is free-form, so the comparison is case-insensitive.
func (m *Meal) IsDrink() bool {
	return strings.EqualFold(strings.TrimSpace(m.Section), "drinks")
}
