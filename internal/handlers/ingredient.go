package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/simpledrinkmaker/sdm-server/internal/errors"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
)

// IngredientHandler coordinates ingredient and cabinet HTTP handlers.
type IngredientHandler struct {
	inventoryService *services.InventoryService
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(inventoryService *services.InventoryService) *IngredientHandler {
	return &IngredientHandler{inventoryService: inventoryService}
}

// ListAll returns every catalog ingredient (unowned ones at quantity zero)
// plus the user's custom ingredients.
func (h *IngredientHandler) ListAll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	listing, err := h.inventoryService.ListAllIngredients(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": listing})
}

// Update sets the quantity and favorite flag of a named ingredient.
func (h *IngredientHandler) Update(c *gin.Context) {
	type UpdateRequest struct {
		Name       *string `json:"name"`
		Quantity   *int    `json:"quantity"`
		IsFavorite *string `json:"isFavorite"`
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Quantity == nil || req.IsFavorite == nil {
		apierrors.Error(c, http.StatusUnauthorized, "Provide name, quantity and isFavorite")
		return
	}

	if err := h.inventoryService.UpdateIngredient(user, *req.Name, *req.Quantity, *req.IsFavorite); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	apierrors.Message(c, http.StatusOK, "Ok")
}

// ListCustom returns the user's custom ingredients.
func (h *IngredientHandler) ListCustom(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ingredients, err := h.inventoryService.ListCustomIngredients(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// CreateCustom creates a custom ingredient owned by the user.
func (h *IngredientHandler) CreateCustom(c *gin.Context) {
	type CreateRequest struct {
		Name *string `json:"name"`
		Type *string `json:"type"`
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Type == nil {
		apierrors.Error(c, http.StatusUnauthorized, "'name' and 'type' are required parameters.")
		return
	}

	result, err := h.inventoryService.CreateCustomIngredient(user, *req.Name, *req.Type)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	switch result {
	case services.CustomIngredientExists:
		apierrors.Message(c, http.StatusOK, fmt.Sprintf("'%s' already exists.", *req.Name))
	case services.CustomIngredientConflict:
		apierrors.Error(c, http.StatusUnauthorized,
			fmt.Sprintf("%s is a default ingredient and can not be added as a custom ingredient.", *req.Name))
	default:
		apierrors.Message(c, http.StatusOK, fmt.Sprintf("Added ingredient '%s' of type '%s'", *req.Name, *req.Type))
	}
}

// DeleteCustom removes a custom ingredient by name.
func (h *IngredientHandler) DeleteCustom(c *gin.Context) {
	type DeleteRequest struct {
		Name *string `json:"name"`
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil {
		apierrors.Error(c, http.StatusUnauthorized, "'name' is a required parameter.")
		return
	}

	if err := h.inventoryService.DeleteCustomIngredient(user, *req.Name); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	apierrors.Message(c, http.StatusOK, "Ok")
}

// ListCabinet returns only the ingredients the user owns.
func (h *IngredientHandler) ListCabinet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	listing, err := h.inventoryService.ListUserIngredients(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": listing})
}

// AddToCabinet adds a batch of catalog ingredients to the user's cabinet.
func (h *IngredientHandler) AddToCabinet(c *gin.Context) {
	type CabinetRequest struct {
		Ingredients []string `json:"ingredients"`
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CabinetRequest
	_ = c.ShouldBindJSON(&req)

	message, err := h.inventoryService.AddIngredients(user, req.Ingredients)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if message == "" {
		apierrors.Message(c, http.StatusBadRequest, "No valid ingredients")
		return
	}
	apierrors.Message(c, http.StatusOK, message)
}

// RemoveFromCabinet removes a batch of catalog ingredients from the cabinet.
func (h *IngredientHandler) RemoveFromCabinet(c *gin.Context) {
	type CabinetRequest struct {
		Ingredients []string `json:"ingredients"`
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CabinetRequest
	_ = c.ShouldBindJSON(&req)

	message, err := h.inventoryService.RemoveIngredients(user, req.Ingredients)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if message == "" {
		apierrors.Message(c, http.StatusBadRequest, "No valid ingredients")
		return
	}
	apierrors.Message(c, http.StatusOK, message)
}
