package repository

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"gorm.io/gorm"
)

// GormRecipeRepository is a GORM implementation of RecipeRepository
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create adds a catalog recipe with its required-ingredient set
func (r *GormRecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// ListAll lists every catalog recipe ordered by name
func (r *GormRecipeRepository) ListAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Preload("Ingredients").
		Order("name").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
