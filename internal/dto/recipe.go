package dto

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/utils"
)

// RecipeDTO represents a recipe in API responses. Required-ingredient names
// are capitalized for display.
type RecipeDTO struct {
	Name         string   `json:"name"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

// ToRecipeDTO converts a recipe with preloaded ingredients to its DTO
func ToRecipeDTO(recipe models.Recipe) RecipeDTO {
	ingredients := make([]string, len(recipe.Ingredients))
	for i, ingredient := range recipe.Ingredients {
		ingredients[i] = utils.Capitalize(ingredient.Name)
	}

	return RecipeDTO{
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		Ingredients:  ingredients,
	}
}
