package services

import (
	"testing"

	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInventoryService(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.CustomIngredient{},
		&models.Recipe{},
		&models.InventoryEntry{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewInventoryService(repository.NewIngredientRepository(db)), db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		UserUUID:     username + "-uuid",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createIngredient(t *testing.T, db *gorm.DB, name, ingredientType string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, IngredientType: ingredientType}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func TestInventoryService_ListAllIngredientsUnowned(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "vodka", "spirit")
	createIngredient(t, db, "banana", "fruit")

	listing, err := service.ListAllIngredients(user)
	require.NoError(t, err)

	// Unowned catalog ingredients show as discoverable entries at quantity
	// zero, capitalized and sorted by name.
	require.Len(t, listing.Default, 2)
	require.Equal(t, "Banana", listing.Default[0].Name)
	require.Equal(t, "Fruit", listing.Default[0].Type)
	require.Equal(t, 0, listing.Default[0].Quantity)
	require.Equal(t, "False", listing.Default[0].Favorite)
	require.Equal(t, "Vodka", listing.Default[1].Name)
	require.Empty(t, listing.Custom)
}

func TestInventoryService_ListAllIngredientsMergesOwned(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "vodka", "spirit")
	createIngredient(t, db, "banana", "fruit")

	require.NoError(t, service.UpdateIngredient(user, "banana", 3, "True"))

	listing, err := service.ListAllIngredients(user)
	require.NoError(t, err)

	require.Len(t, listing.Default, 2)
	require.Equal(t, "Banana", listing.Default[0].Name)
	require.Equal(t, 3, listing.Default[0].Quantity)
	require.Equal(t, "True", listing.Default[0].Favorite)
	require.Equal(t, "Vodka", listing.Default[1].Name)
	require.Equal(t, 0, listing.Default[1].Quantity)
}

func TestInventoryService_AddAndRemoveIngredients(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "banana", "fruit")
	createIngredient(t, db, "vodka", "spirit")

	message, err := service.AddIngredients(user, []string{"Banana", "Vodka"})
	require.NoError(t, err)
	// The confirmation echoes the names exactly as supplied.
	require.Equal(t, "Added Banana, Vodka to user cabinet.", message)

	cabinet, err := service.ListUserIngredients(user)
	require.NoError(t, err)
	require.Len(t, cabinet.Default, 2)
	require.Equal(t, "Banana", cabinet.Default[0].Name)
	require.Equal(t, "Vodka", cabinet.Default[1].Name)

	message, err = service.RemoveIngredients(user, []string{"banana"})
	require.NoError(t, err)
	require.Equal(t, "Removed banana from user cabinet.", message)

	cabinet, err = service.ListUserIngredients(user)
	require.NoError(t, err)
	require.Len(t, cabinet.Default, 1)
	require.Equal(t, "Vodka", cabinet.Default[0].Name)
}

func TestInventoryService_AddIngredientsIdempotent(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "banana", "fruit")

	_, err := service.AddIngredients(user, []string{"banana"})
	require.NoError(t, err)

	// Set a quantity, then re-add; the existing entry must survive untouched.
	require.NoError(t, service.UpdateIngredient(user, "banana", 5, "True"))
	_, err = service.AddIngredients(user, []string{"banana"})
	require.NoError(t, err)

	var entries []models.InventoryEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, 5, entries[0].Quantity)
	require.True(t, entries[0].Favorite)

	// Removing twice is also idempotent.
	_, err = service.RemoveIngredients(user, []string{"banana"})
	require.NoError(t, err)
	_, err = service.RemoveIngredients(user, []string{"banana"})
	require.NoError(t, err)
}

func TestInventoryService_AddIngredientsEmptyAndUnknown(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "banana", "fruit")

	// Empty input yields no confirmation.
	message, err := service.AddIngredients(user, nil)
	require.NoError(t, err)
	require.Empty(t, message)

	// Unknown names are skipped but still echoed in the confirmation.
	message, err = service.AddIngredients(user, []string{"banana", "unobtainium"})
	require.NoError(t, err)
	require.Equal(t, "Added banana, unobtainium to user cabinet.", message)

	cabinet, err := service.ListUserIngredients(user)
	require.NoError(t, err)
	require.Len(t, cabinet.Default, 1)
}

func TestInventoryService_UpdateIngredientUpsert(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "banana", "fruit")

	require.NoError(t, service.UpdateIngredient(user, "banana", 3, "True"))
	require.NoError(t, service.UpdateIngredient(user, "banana", 5, "False"))

	var entries []models.InventoryEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, 5, entries[0].Quantity)
	require.False(t, entries[0].Favorite)
}

func TestInventoryService_UpdateIngredientFavoriteParsing(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "banana", "fruit")

	// Exactly the literal "False" means false; any other string means true.
	require.NoError(t, service.UpdateIngredient(user, "banana", 1, "false"))

	var entry models.InventoryEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	require.True(t, entry.Favorite)

	require.NoError(t, service.UpdateIngredient(user, "banana", 1, "False"))
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	require.False(t, entry.Favorite)
}

func TestInventoryService_UpdateIngredientUnknownIsNoOp(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")

	require.NoError(t, service.UpdateIngredient(user, "unobtainium", 3, "True"))

	var count int64
	require.NoError(t, db.Model(&models.InventoryEntry{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestInventoryService_UpdateIngredientCustom(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")

	result, err := service.CreateCustomIngredient(user, "Homemade Syrup", "sweetener")
	require.NoError(t, err)
	require.Equal(t, CustomIngredientAdded, result)

	require.NoError(t, service.UpdateIngredient(user, "Homemade Syrup", 2, "True"))

	var custom models.CustomIngredient
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&custom).Error)
	require.Equal(t, 2, custom.Quantity)
	require.True(t, custom.IsFavorite)
}

func TestInventoryService_CreateCustomIngredient(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")
	createIngredient(t, db, "apple", "fruit")

	// Colliding with a catalog ingredient is rejected, case-insensitively.
	result, err := service.CreateCustomIngredient(user, "Apple", "Fruit")
	require.NoError(t, err)
	require.Equal(t, CustomIngredientConflict, result)

	cabinet, err := service.ListUserIngredients(user)
	require.NoError(t, err)
	require.Empty(t, cabinet.Custom)

	// New custom ingredients start at quantity zero, not favorite.
	result, err = service.CreateCustomIngredient(user, "Homemade Syrup", "sweetener")
	require.NoError(t, err)
	require.Equal(t, CustomIngredientAdded, result)

	var custom models.CustomIngredient
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&custom).Error)
	require.Equal(t, "homemade syrup", custom.Name)
	require.Zero(t, custom.Quantity)
	require.False(t, custom.IsFavorite)

	// Re-creating the same name is an idempotent success.
	result, err = service.CreateCustomIngredient(user, "homemade syrup", "sweetener")
	require.NoError(t, err)
	require.Equal(t, CustomIngredientExists, result)
}

func TestInventoryService_DeleteCustomIngredientPerUser(t *testing.T) {
	service, db := setupInventoryService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	// Two users may own custom ingredients with the same name.
	_, err := service.CreateCustomIngredient(alice, "syrup", "sweetener")
	require.NoError(t, err)
	_, err = service.CreateCustomIngredient(bob, "syrup", "sweetener")
	require.NoError(t, err)

	require.NoError(t, service.DeleteCustomIngredient(alice, "syrup"))

	aliceCabinet, err := service.ListUserIngredients(alice)
	require.NoError(t, err)
	require.Empty(t, aliceCabinet.Custom)

	bobCabinet, err := service.ListUserIngredients(bob)
	require.NoError(t, err)
	require.Len(t, bobCabinet.Custom, 1)

	// Deleting an unknown name is a no-op.
	require.NoError(t, service.DeleteCustomIngredient(alice, "syrup"))
}

func TestInventoryService_CabinetsAreIsolated(t *testing.T) {
	service, db := setupInventoryService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createIngredient(t, db, "banana", "fruit")
	createIngredient(t, db, "vodka", "spirit")

	_, err := service.AddIngredients(alice, []string{"banana", "vodka"})
	require.NoError(t, err)
	_, err = service.AddIngredients(bob, []string{"banana", "vodka"})
	require.NoError(t, err)

	// Symmetric cabinets after identical additions.
	aliceCabinet, err := service.ListUserIngredients(alice)
	require.NoError(t, err)
	bobCabinet, err := service.ListUserIngredients(bob)
	require.NoError(t, err)
	require.Equal(t, aliceCabinet.Default, bobCabinet.Default)

	// Removing from one cabinet leaves the other and the catalog untouched.
	_, err = service.RemoveIngredients(alice, []string{"banana"})
	require.NoError(t, err)

	bobCabinet, err = service.ListUserIngredients(bob)
	require.NoError(t, err)
	require.Len(t, bobCabinet.Default, 2)

	var catalogCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&catalogCount).Error)
	require.Equal(t, int64(2), catalogCount)
}

func TestInventoryService_ListCustomIngredients(t *testing.T) {
	service, db := setupInventoryService(t)
	user := createUser(t, db, "alice")

	_, err := service.CreateCustomIngredient(user, "tonic syrup", "mixer")
	require.NoError(t, err)
	_, err = service.CreateCustomIngredient(user, "bitters blend", "bitters")
	require.NoError(t, err)

	ingredients, err := service.ListCustomIngredients(user)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	require.Equal(t, "Bitters blend", ingredients[0].Name)
	require.Equal(t, "Tonic syrup", ingredients[1].Name)
}
