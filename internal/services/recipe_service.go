package services

import (
	"fmt"

	"github.com/simpledrinkmaker/sdm-server/internal/dto"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
)

// RecipeService answers which catalog recipes a user can make from the
// ingredients currently in their cabinet. Only catalog ingredients satisfy
// recipe requirements; custom ingredients never match.
type RecipeService struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo repository.RecipeRepository, ingredientRepo repository.IngredientRepository) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

// ListAll returns every catalog recipe with its required-ingredient names,
// sorted by recipe name
func (s *RecipeService) ListAll() ([]dto.RecipeDTO, error) {
	recipes, err := s.recipeRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	result := make([]dto.RecipeDTO, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, dto.ToRecipeDTO(recipe))
	}
	return result, nil
}

// FullMatches returns recipes whose entire required-ingredient set is owned
// by the user. A recipe with no required ingredients trivially matches.
func (s *RecipeService) FullMatches(user *models.User) ([]dto.RecipeDTO, error) {
	return s.matches(user, func(required []models.Ingredient, owned map[uint64]bool) bool {
		for _, ingredient := range required {
			if !owned[ingredient.ID] {
				return false
			}
		}
		return true
	})
}

// PartialMatches returns recipes for which the user owns at least one
// required ingredient
func (s *RecipeService) PartialMatches(user *models.User) ([]dto.RecipeDTO, error) {
	return s.matches(user, func(required []models.Ingredient, owned map[uint64]bool) bool {
		for _, ingredient := range required {
			if owned[ingredient.ID] {
				return true
			}
		}
		return false
	})
}

func (s *RecipeService) matches(user *models.User, qualifies func([]models.Ingredient, map[uint64]bool) bool) ([]dto.RecipeDTO, error) {
	entries, err := s.ingredientRepo.ListEntriesByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	owned := make(map[uint64]bool, len(entries))
	for _, entry := range entries {
		owned[entry.IngredientID] = true
	}

	recipes, err := s.recipeRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	result := make([]dto.RecipeDTO, 0, len(recipes))
	for _, recipe := range recipes {
		if qualifies(recipe.Ingredients, owned) {
			result = append(result, dto.ToRecipeDTO(recipe))
		}
	}
	return result, nil
}
