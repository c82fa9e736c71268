package models

// InventoryEntry associates a user with a catalog ingredient. Row existence is
// ownership: a user owns an ingredient if and only if an entry exists,
// regardless of quantity. At most one entry per (user, ingredient) pair.
type InventoryEntry struct {
	UserID       uint64 `gorm:"primarykey" json:"user_id"`
	IngredientID uint64 `gorm:"primarykey" json:"ingredient_id"`
	Quantity     int    `gorm:"not null;default:0" json:"quantity"`
	Favorite     bool   `gorm:"not null;default:false" json:"favorite"`

	// Relations
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}
