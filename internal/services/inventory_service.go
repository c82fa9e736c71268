package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/simpledrinkmaker/sdm-server/internal/dto"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
	"gorm.io/gorm"
)

// CustomIngredientResult describes the outcome of creating a custom ingredient
type CustomIngredientResult int

const (
	// CustomIngredientAdded means a new custom ingredient was created
	CustomIngredientAdded CustomIngredientResult = iota
	// CustomIngredientExists means the user already owns a custom ingredient
	// with that name; treated as an idempotent success
	CustomIngredientExists
	// CustomIngredientConflict means the name collides with a catalog
	// ingredient, which custom ingredients may not shadow
	CustomIngredientConflict
)

// InventoryService handles the per-user ingredient ledger: catalog ownership
// with quantities and favorites, plus user-defined custom ingredients.
type InventoryService struct {
	ingredientRepo repository.IngredientRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(ingredientRepo repository.IngredientRepository) *InventoryService {
	return &InventoryService{ingredientRepo: ingredientRepo}
}

// ListAllIngredients returns every catalog ingredient, discoverable-but-unowned
// entries at quantity zero, owned entries with the user's actual quantity and
// favorite flag, plus the user's custom ingredients. Both lists are sorted by
// display name.
func (s *InventoryService) ListAllIngredients(user *models.User) (*dto.IngredientListing, error) {
	entries, err := s.ingredientRepo.ListEntriesByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	owned := make(map[uint64]bool, len(entries))
	defaults := make([]dto.IngredientDTO, 0, len(entries))
	for _, entry := range entries {
		owned[entry.IngredientID] = true
		defaults = append(defaults, dto.ToOwnedIngredientDTO(entry))
	}

	catalog, err := s.ingredientRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	for _, ingredient := range catalog {
		if !owned[ingredient.ID] {
			defaults = append(defaults, dto.ToUnownedIngredientDTO(ingredient))
		}
	}

	customs, err := s.ingredientRepo.ListCustomByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom ingredients: %w", err)
	}
	custom := make([]dto.IngredientDTO, 0, len(customs))
	for _, ingredient := range customs {
		custom = append(custom, dto.ToCustomEntryDTO(ingredient))
	}

	sortIngredientDTOs(defaults)
	sortIngredientDTOs(custom)

	return &dto.IngredientListing{Default: defaults, Custom: custom}, nil
}

// ListUserIngredients returns only the ingredients the user actually owns:
// inventory entries and custom ingredients. Owning nothing yields empty lists.
func (s *InventoryService) ListUserIngredients(user *models.User) (*dto.IngredientListing, error) {
	entries, err := s.ingredientRepo.ListEntriesByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defaults := make([]dto.IngredientDTO, 0, len(entries))
	for _, entry := range entries {
		defaults = append(defaults, dto.ToOwnedIngredientDTO(entry))
	}

	customs, err := s.ingredientRepo.ListCustomByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom ingredients: %w", err)
	}
	custom := make([]dto.IngredientDTO, 0, len(customs))
	for _, ingredient := range customs {
		custom = append(custom, dto.ToCustomEntryDTO(ingredient))
	}

	sortIngredientDTOs(defaults)
	sortIngredientDTOs(custom)

	return &dto.IngredientListing{Default: defaults, Custom: custom}, nil
}

// ListCustomIngredients returns the user's custom ingredients as name/type
// pairs, sorted by display name
func (s *InventoryService) ListCustomIngredients(user *models.User) ([]dto.CustomIngredientDTO, error) {
	customs, err := s.ingredientRepo.ListCustomByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom ingredients: %w", err)
	}

	ingredients := make([]dto.CustomIngredientDTO, 0, len(customs))
	for _, ingredient := range customs {
		ingredients = append(ingredients, dto.ToCustomIngredientDTO(ingredient))
	}
	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].Name < ingredients[j].Name
	})
	return ingredients, nil
}

// UpdateIngredient sets the quantity and favorite flag for the named
// ingredient. The catalog is consulted first; updating a catalog ingredient
// also establishes ownership. Otherwise the user's custom ingredients are
// updated in place. An unknown name is a silent no-op.
//
// isFavorite keeps the frontend's string contract: exactly "False" means
// false, anything else (including absence) means true.
func (s *InventoryService) UpdateIngredient(user *models.User, name string, quantity int, isFavorite string) error {
	favorite := isFavorite != "False"
	lower := strings.ToLower(name)

	ingredient, err := s.ingredientRepo.FindByName(lower)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.updateCustomIngredient(user, lower, quantity, favorite)
		}
		return fmt.Errorf("failed to find ingredient: %w", err)
	}

	entry := &models.InventoryEntry{
		UserID:       user.ID,
		IngredientID: ingredient.ID,
		Quantity:     quantity,
		Favorite:     favorite,
	}
	if err := s.ingredientRepo.UpsertEntry(entry); err != nil {
		return fmt.Errorf("failed to upsert inventory entry: %w", err)
	}
	return nil
}

func (s *InventoryService) updateCustomIngredient(user *models.User, name string, quantity int, favorite bool) error {
	ingredient, err := s.ingredientRepo.FindCustomByName(user.ID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find custom ingredient: %w", err)
	}

	ingredient.Quantity = quantity
	ingredient.IsFavorite = favorite
	if err := s.ingredientRepo.UpdateCustom(ingredient); err != nil {
		return fmt.Errorf("failed to update custom ingredient: %w", err)
	}
	return nil
}

// AddIngredients adds the named catalog ingredients to the user's cabinet.
// Unknown names and already-owned ingredients are skipped; the batch commits
// once. The confirmation echoes the names exactly as supplied. An empty input
// yields an empty confirmation.
func (s *InventoryService) AddIngredients(user *models.User, names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}

	ids, err := s.resolveCatalogIDs(names)
	if err != nil {
		return "", err
	}
	if err := s.ingredientRepo.AddOwned(user.ID, ids); err != nil {
		return "", fmt.Errorf("failed to add ingredients: %w", err)
	}

	return fmt.Sprintf("Added %s to user cabinet.", strings.Join(names, ", ")), nil
}

// RemoveIngredients removes the named catalog ingredients from the user's
// cabinet, mirroring AddIngredients
func (s *InventoryService) RemoveIngredients(user *models.User, names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}

	ids, err := s.resolveCatalogIDs(names)
	if err != nil {
		return "", err
	}
	if err := s.ingredientRepo.RemoveOwned(user.ID, ids); err != nil {
		return "", fmt.Errorf("failed to remove ingredients: %w", err)
	}

	return fmt.Sprintf("Removed %s from user cabinet.", strings.Join(names, ", ")), nil
}

func (s *InventoryService) resolveCatalogIDs(names []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		ingredient, err := s.ingredientRepo.FindByName(strings.ToLower(name))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find ingredient: %w", err)
		}
		ids = append(ids, ingredient.ID)
	}
	return ids, nil
}

// CreateCustomIngredient creates a custom ingredient owned by the user.
// Re-creating an existing custom name is an idempotent success; shadowing a
// catalog ingredient name is rejected.
func (s *InventoryService) CreateCustomIngredient(user *models.User, name, ingredientType string) (CustomIngredientResult, error) {
	lower := strings.ToLower(name)

	_, err := s.ingredientRepo.FindCustomByName(user.ID, lower)
	if err == nil {
		return CustomIngredientExists, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to find custom ingredient: %w", err)
	}

	_, err = s.ingredientRepo.FindByName(lower)
	if err == nil {
		return CustomIngredientConflict, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to find ingredient: %w", err)
	}

	ingredient := &models.CustomIngredient{
		UserID:         user.ID,
		Name:           lower,
		IngredientType: ingredientType,
		Quantity:       0,
		IsFavorite:     false,
	}
	if err := s.ingredientRepo.CreateCustom(ingredient); err != nil {
		return 0, fmt.Errorf("failed to create custom ingredient: %w", err)
	}
	return CustomIngredientAdded, nil
}

// DeleteCustomIngredient removes the user's custom ingredient by name. The
// row is deleted by ID because names are only unique per user. An unknown
// name is a no-op.
func (s *InventoryService) DeleteCustomIngredient(user *models.User, name string) error {
	ingredient, err := s.ingredientRepo.FindCustomByName(user.ID, strings.ToLower(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find custom ingredient: %w", err)
	}

	if err := s.ingredientRepo.DeleteCustomByID(ingredient.ID); err != nil {
		return fmt.Errorf("failed to delete custom ingredient: %w", err)
	}
	return nil
}

func sortIngredientDTOs(ingredients []dto.IngredientDTO) {
	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].Name < ingredients[j].Name
	})
}
