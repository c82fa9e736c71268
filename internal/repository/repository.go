package repository

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByLoginID finds a user whose username or email matches loginID
	FindByLoginID(loginID string) (*models.User, error)

	// FindByUUID finds a user by its stable UUID
	FindByUUID(userUUID string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether a user exists with the given
	// username or email, checked as a single combined lookup
	ExistsByUsernameOrEmail(username, email string) (bool, error)

	// UpdatePassword replaces the stored password hash for a user
	UpdatePassword(userID uint64, passwordHash string) error
}

// IngredientRepository defines the interface for catalog ingredient,
// inventory, and custom ingredient data access
type IngredientRepository interface {
	// CreateIngredient adds a catalog ingredient
	CreateIngredient(ingredient *models.Ingredient) error

	// FindByName finds a catalog ingredient by its lower-cased name
	FindByName(name string) (*models.Ingredient, error)

	// ListAll lists every catalog ingredient
	ListAll() ([]models.Ingredient, error)

	// ListEntriesByUser lists a user's inventory entries with the catalog
	// ingredient preloaded
	ListEntriesByUser(userID uint64) ([]models.InventoryEntry, error)

	// UpsertEntry creates the (user, ingredient) inventory entry or updates
	// its quantity and favorite flag in place
	UpsertEntry(entry *models.InventoryEntry) error

	// AddOwned establishes ownership of the given catalog ingredients for a
	// user. Already-owned ingredients are left untouched. The whole batch
	// commits as a unit.
	AddOwned(userID uint64, ingredientIDs []uint64) error

	// RemoveOwned removes ownership of the given catalog ingredients for a
	// user as a single batch
	RemoveOwned(userID uint64, ingredientIDs []uint64) error

	// FindCustomByName finds a user's custom ingredient by lower-cased name
	FindCustomByName(userID uint64, name string) (*models.CustomIngredient, error)

	// ListCustomByUser lists a user's custom ingredients
	ListCustomByUser(userID uint64) ([]models.CustomIngredient, error)

	// CreateCustom creates a custom ingredient owned by a single user
	CreateCustom(ingredient *models.CustomIngredient) error

	// UpdateCustom updates a custom ingredient in place
	UpdateCustom(ingredient *models.CustomIngredient) error

	// DeleteCustomByID deletes a custom ingredient row by identifier.
	// Deletion is by ID rather than name because custom ingredient names are
	// only unique per user.
	DeleteCustomByID(id uint64) error
}

// RecipeRepository defines the interface for catalog recipe data access
type RecipeRepository interface {
	// Create adds a catalog recipe with its required-ingredient set
	Create(recipe *models.Recipe) error

	// ListAll lists every catalog recipe with required ingredients preloaded,
	// ordered by recipe name
	ListAll() ([]models.Recipe, error)
}
