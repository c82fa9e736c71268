package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simpledrinkmaker/sdm-server/internal/middleware"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
)

// Index is the default route, pointing API consumers at the documentation.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Please reference API documentation to view supported endpoints"})
}

// currentUser fetches the user resolved by the access guard. A missing user
// means the route was wired without RequireAuth; respond as unauthenticated.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": middleware.InvalidTokenMessage})
		return nil, false
	}
	return user, true
}
