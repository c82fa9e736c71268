package models

import "time"

// Ingredient is a catalog ingredient shared by all users. Name is stored
// lower-case; Quantity and IsFavorite are template defaults only. A user's
// actual quantity and favorite flag live on InventoryEntry.
type Ingredient struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	IngredientType string    `gorm:"type:varchar(50);not null" json:"ingredient_type"`
	Quantity       int       `gorm:"not null;default:0" json:"quantity"`
	IsFavorite     bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	UsedIn []Recipe `gorm:"many2many:recipe_ingredients" json:"-"`
}
