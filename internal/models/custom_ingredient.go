package models

import "time"

// CustomIngredient is a per-user, non-catalog ingredient. Name uniqueness is
// scoped to the owning user; two users may each define "homemade syrup".
// Custom ingredients never satisfy recipe requirements.
type CustomIngredient struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_custom_user_name" json:"user_id"`
	Name           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_custom_user_name" json:"name"`
	IngredientType string    `gorm:"type:varchar(50);not null" json:"ingredient_type"`
	Quantity       int       `gorm:"not null;default:0" json:"quantity"`
	IsFavorite     bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
