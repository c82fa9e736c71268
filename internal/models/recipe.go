package models

import "time"

type Recipe struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients,omitempty"`
}
