package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simpledrinkmaker/sdm-server/internal/constants"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
)

// InvalidTokenMessage is the uniform response for every authentication
// failure. Missing headers, malformed headers, bad signatures, expiry, and
// unknown subjects are deliberately indistinguishable.
const InvalidTokenMessage = "Invalid authentication token. Please log in and try again."

// RequireAuth validates the bearer token in the Authorization header and
// makes the resolved user available to wrapped handlers. The header must
// contain exactly two whitespace-separated parts: the scheme and the token.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 {
			abortInvalid(c)
			return
		}

		user, err := authService.ResolveToken(parts[1])
		if err != nil {
			abortInvalid(c)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

func abortInvalid(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": InvalidTokenMessage})
}

// GetUser retrieves the authenticated user from the request context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
