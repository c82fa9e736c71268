package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simpledrinkmaker/sdm-server/internal/constants"
	apierrors "github.com/simpledrinkmaker/sdm-server/internal/errors"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user by username or email and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		LoginID  *string `json:"loginId"`
		Password *string `json:"password"`
	}

	invalid := "Invalid username or password"

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Message(c, http.StatusUnauthorized, invalid)
		return
	}
	if req.LoginID == nil || *req.LoginID == "" || req.Password == nil {
		apierrors.Message(c, http.StatusUnauthorized, invalid)
		return
	}

	user, err := h.authService.Login(*req.LoginID, *req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Message(c, http.StatusUnauthorized, invalid)
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	token, err := h.authService.IssueToken(user, constants.LoginTokenTTL)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Email    *string `json:"email"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Message(c, http.StatusBadRequest, "'username, password, email' are required parameters.")
		return
	}
	if req.Username == nil || req.Password == nil || req.Email == nil {
		apierrors.Message(c, http.StatusBadRequest, "'username, password, email' are required parameters.")
		return
	}

	_, err := h.authService.Register(*req.Username, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			apierrors.Error(c, http.StatusForbidden, "User or email already registered. Please login instead.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	apierrors.Message(c, http.StatusOK, "New user created.")
}

// ForgotPassword requests a password-reset email. The response is identical
// whether or not the login ID exists or the email could be delivered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	type ForgotRequest struct {
		LoginID *string `json:"loginId"`
	}

	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.LoginID != nil {
		h.authService.RequestPasswordReset(*req.LoginID)
	}

	apierrors.Message(c, http.StatusOK, "An email has been sent with instructions to reset your password.")
}

// ResetPassword sets a new password after following a reset link.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	type ResetRequest struct {
		NewPassword *string `json:"newPassword"`
	}

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == nil {
		apierrors.Error(c, http.StatusBadRequest, "'newPassword' is a required parameter.")
		return
	}

	if err := h.authService.ResetPassword(c.Param("token"), *req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			apierrors.Error(c, http.StatusBadRequest, "The reset password link is expired. Please try again.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	apierrors.Message(c, http.StatusOK, "Your password was reset.")
}

// Authenticate confirms a bearer token and returns the username it belongs to.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Username})
}
