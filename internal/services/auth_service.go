package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/simpledrinkmaker/sdm-server/internal/constants"
	"github.com/simpledrinkmaker/sdm-server/internal/logger"
	"github.com/simpledrinkmaker/sdm-server/internal/mail"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUserExists is returned when a username or email is already registered.
	ErrUserExists = errors.New("user or email already registered")
	// ErrInvalidCredentials covers both unknown login IDs and wrong passwords,
	// deliberately indistinguishable to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken covers every token failure mode: malformed, expired,
	// wrong signature, or unknown subject.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// AuthService handles registration, credential verification, and token
// issuance and resolution.
type AuthService struct {
	userRepo     repository.UserRepository
	mailer       mail.Mailer
	signKey      []byte
	resetURLBase string
}

// NewAuthService constructs an AuthService. The signing key is injected at
// startup rather than read from ambient configuration.
func NewAuthService(userRepo repository.UserRepository, mailer mail.Mailer, signKey []byte, resetURLBase string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		mailer:       mailer,
		signKey:      signKey,
		resetURLBase: resetURLBase,
	}
}

// Register creates a new user with a hashed password and a fresh UUID.
// The username and email are checked together in a single lookup.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userUUID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user uuid: %w", err)
	}

	user := &models.User{
		UserUUID:     userUUID.String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login matches loginID against username or email and verifies the password.
// Unknown users and wrong passwords produce the same error.
func (s *AuthService) Login(loginID, password string) (*models.User, error) {
	user, err := s.userRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken creates a signed HS256 token whose subject is the user's UUID
func (s *AuthService) IssueToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UserUUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken verifies a token and returns the user it was issued to.
// Every failure mode collapses to ErrInvalidToken.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByUUID(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// RequestPasswordReset emails a reset link to the user matching loginID.
// Unknown login IDs and delivery failures are swallowed so the caller always
// reports that an email has been sent.
func (s *AuthService) RequestPasswordReset(loginID string) {
	user, err := s.userRepo.FindByLoginID(loginID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("password reset lookup failed", zap.Error(err))
		}
		return
	}

	token, err := s.IssueToken(user, constants.ResetTokenTTL)
	if err != nil {
		logger.Error("failed to issue reset token", zap.Error(err))
		return
	}

	link := strings.TrimRight(s.resetURLBase, "/") + "/" + token
	body := mail.ResetMessageBody(user.Username, link)
	if err := s.mailer.Send(user.Email, "Reset Password", body); err != nil {
		logger.Warn("failed to send reset email", zap.String("email", user.Email), zap.Error(err))
	}
}

// ResetPassword verifies a reset token and stores a new password hash
func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	user, err := s.ResolveToken(tokenString)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
