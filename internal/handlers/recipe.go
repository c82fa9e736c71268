package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/simpledrinkmaker/sdm-server/internal/errors"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
)

// RecipeHandler coordinates recipe HTTP handlers.
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// ListAll returns every catalog recipe.
func (h *RecipeHandler) ListAll(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	recipes, err := h.recipeService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// FullMatches returns recipes the user can make with the cabinet as-is.
func (h *RecipeHandler) FullMatches(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.FullMatches(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// PartialMatches returns recipes sharing at least one ingredient with the
// user's cabinet.
func (h *RecipeHandler) PartialMatches(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.PartialMatches(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
