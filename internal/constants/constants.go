package constants

import "time"

const (
	// ContextKeyUser is the gin context key holding the authenticated user.
	ContextKeyUser = "currentUser"

	// LoginTokenTTL is the lifetime of tokens issued at login.
	LoginTokenTTL = 30 * time.Minute

	// ResetTokenTTL is the default lifetime of password-reset tokens.
	ResetTokenTTL = 30 * time.Minute
)
