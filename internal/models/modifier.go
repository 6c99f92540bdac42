package models

import (
	"time"

	"gorm.io/gorm"
)

// ModifierScope restricts which meal categories a group may attach to.
type ModifierScope string

const (
	ScopeFood  ModifierScope = "food"
	ScopeDrink ModifierScope = "drink"
	ScopeBoth  ModifierScope = "both"
)

type ModifierGroup struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	RestaurantID uint             `json:"restaurant_id" gorm:"not null;index"`
	Name         string           `json:"name" gorm:"not null"`
	Required     bool             `json:"required" gorm:"default:false"`
	MinSelect    int              `json:"min_select" gorm:"default:0"`
	MaxSelect    int              `json:"max_select" gorm:"default:0"` // 0 = unbounded
	Scope        string           `json:"scope" gorm:"default:'both'"` // food, drink, both
	Options      []ModifierOption `json:"options" gorm:"foreignKey:GroupID"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
}

type ModifierOption struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	GroupID    uint           `json:"group_id" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	PriceDelta float64        `json:"price_delta" gorm:"default:0"`
	IsDefault  bool           `json:"is_default" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// MealGroup links a meal to one of its restaurant's modifier groups.
type MealGroup struct {
	MealID  uint `json:"meal_id" gorm:"primaryKey;autoIncrement:false"`
	GroupID uint `json:"group_id" gorm:"primaryKey;autoIncrement:false"`
}
