package repository

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIngredientRepository is a GORM implementation of IngredientRepository
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &GormIngredientRepository{db: db}
}

// CreateIngredient adds a catalog ingredient
func (r *GormIngredientRepository) CreateIngredient(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// FindByName finds a catalog ingredient by its lower-cased name
func (r *GormIngredientRepository) FindByName(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// ListAll lists every catalog ingredient
func (r *GormIngredientRepository) ListAll() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListEntriesByUser lists a user's inventory entries with ingredients preloaded
func (r *GormIngredientRepository) ListEntriesByUser(userID uint64) ([]models.InventoryEntry, error) {
	var entries []models.InventoryEntry
	if err := r.db.Preload("Ingredient").
		Where("user_id = ?", userID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertEntry creates or updates the (user, ingredient) inventory entry.
// Creating the row also establishes ownership.
func (r *GormIngredientRepository) UpsertEntry(entry *models.InventoryEntry) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "favorite"}),
		}).
		Create(entry).Error
}

// AddOwned establishes ownership of the given ingredients in one statement.
// Existing entries keep their quantity and favorite flag.
func (r *GormIngredientRepository) AddOwned(userID uint64, ingredientIDs []uint64) error {
	if len(ingredientIDs) == 0 {
		return nil
	}

	entries := make([]models.InventoryEntry, len(ingredientIDs))
	for i, ingredientID := range ingredientIDs {
		entries[i] = models.InventoryEntry{
			UserID:       userID,
			IngredientID: ingredientID,
		}
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "ingredient_id"}},
			DoNothing: true,
		}).
		Create(&entries).Error
}

// RemoveOwned removes ownership of the given ingredients in one statement
func (r *GormIngredientRepository) RemoveOwned(userID uint64, ingredientIDs []uint64) error {
	if len(ingredientIDs) == 0 {
		return nil
	}
	return r.db.Where("user_id = ? AND ingredient_id IN ?", userID, ingredientIDs).
		Delete(&models.InventoryEntry{}).Error
}

// FindCustomByName finds a user's custom ingredient by lower-cased name
func (r *GormIngredientRepository) FindCustomByName(userID uint64, name string) (*models.CustomIngredient, error) {
	var ingredient models.CustomIngredient
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// ListCustomByUser lists a user's custom ingredients
func (r *GormIngredientRepository) ListCustomByUser(userID uint64) ([]models.CustomIngredient, error) {
	var ingredients []models.CustomIngredient
	if err := r.db.Where("user_id = ?", userID).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateCustom creates a custom ingredient
func (r *GormIngredientRepository) CreateCustom(ingredient *models.CustomIngredient) error {
	return r.db.Create(ingredient).Error
}

// UpdateCustom updates a custom ingredient in place
func (r *GormIngredientRepository) UpdateCustom(ingredient *models.CustomIngredient) error {
	return r.db.Save(ingredient).Error
}

// DeleteCustomByID deletes a custom ingredient row by identifier
func (r *GormIngredientRepository) DeleteCustomByID(id uint64) error {
	return r.db.Delete(&models.CustomIngredient{}, id).Error
}
