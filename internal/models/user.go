package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserUUID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"user_uuid"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(80);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Inventory         []InventoryEntry   `gorm:"foreignKey:UserID" json:"-"`
	CustomIngredients []CustomIngredient `gorm:"foreignKey:UserID" json:"-"`
}
