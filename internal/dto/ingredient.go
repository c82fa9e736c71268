package dto

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/utils"
)

// IngredientDTO represents an ingredient in API responses. Names and types are
// capitalized for display; the favorite flag is serialized as the strings
// "True"/"False" for compatibility with the frontend.
type IngredientDTO struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Favorite string `json:"favorite"`
}

// IngredientListing groups catalog ("default") and custom ingredient lists
type IngredientListing struct {
	Default []IngredientDTO `json:"default"`
	Custom  []IngredientDTO `json:"custom"`
}

// CustomIngredientDTO represents a custom ingredient in the custom-ingredient
// listing, which carries name and type only
type CustomIngredientDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FormatFavorite renders a favorite flag as "True" or "False"
func FormatFavorite(favorite bool) string {
	if favorite {
		return "True"
	}
	return "False"
}

// ToOwnedIngredientDTO converts an inventory entry to a DTO carrying the
// user's actual quantity and favorite flag. The catalog ingredient must be
// preloaded on the entry.
func ToOwnedIngredientDTO(entry models.InventoryEntry) IngredientDTO {
	return IngredientDTO{
		Name:     utils.Capitalize(entry.Ingredient.Name),
		Type:     utils.Capitalize(entry.Ingredient.IngredientType),
		Quantity: entry.Quantity,
		Favorite: FormatFavorite(entry.Favorite),
	}
}

// ToUnownedIngredientDTO converts a catalog ingredient the user does not own
// into a discoverable entry with zero quantity
func ToUnownedIngredientDTO(ingredient models.Ingredient) IngredientDTO {
	return IngredientDTO{
		Name:     utils.Capitalize(ingredient.Name),
		Type:     utils.Capitalize(ingredient.IngredientType),
		Quantity: 0,
		Favorite: "False",
	}
}

// ToCustomEntryDTO converts a custom ingredient into a cabinet entry
func ToCustomEntryDTO(ingredient models.CustomIngredient) IngredientDTO {
	return IngredientDTO{
		Name:     utils.Capitalize(ingredient.Name),
		Type:     utils.Capitalize(ingredient.IngredientType),
		Quantity: ingredient.Quantity,
		Favorite: FormatFavorite(ingredient.IsFavorite),
	}
}

// ToCustomIngredientDTO converts a custom ingredient to its listing shape
func ToCustomIngredientDTO(ingredient models.CustomIngredient) CustomIngredientDTO {
	return CustomIngredientDTO{
		Name: utils.Capitalize(ingredient.Name),
		Type: utils.Capitalize(ingredient.IngredientType),
	}
}
