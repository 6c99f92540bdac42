package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	OwnerID      uint           `json:"owner_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	Location     string         `json:"location"`
	Cuisine      string         `json:"cuisine"`
	Photo        string         `json:"photo"`
	Description  string         `json:"description" gorm:"type:text"`
	Phone        string         `json:"phone"`
	Opens        string         `json:"open_hours"`
	Closes       string         `json:"close_hours"`
	Rating       float64        `json:"rating"`
	DailySpecial string         `json:"daily_special"`
	Approved     bool           `json:"approved" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
