package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrEmailNotConfirmed  = errors.New("Please check your email for the confirmation link before signing in.")
	ErrInvalidEmail       = errors.New("invalid email address")
)

type AuthService struct {
	userRepository           repository.UserRepository
	profileRepository        repository.ProfileRepository
	tokenRepository          repository.TokenRepository
	subscriptionService      *SubscriptionService
	emailService             *EmailService
	jwtSecret                string
	isProduction             bool
	jwtExpiry                time.Duration
	tokenEmailConfirmExpiry  time.Duration
	tokenPasswordResetExpiry time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	tokenRepository repository.TokenRepository,
	subscriptionService *SubscriptionService,
	emailService *EmailService,
	jwtSecret string,
	isProduction bool,
	jwtExpiry time.Duration,
	tokenEmailConfirmExpiry time.Duration,
	tokenPasswordResetExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:           userRepository,
		profileRepository:        profileRepository,
		tokenRepository:          tokenRepository,
		subscriptionService:      subscriptionService,
		emailService:             emailService,
		isProduction:             isProduction,
		jwtSecret:                jwtSecret,
		jwtExpiry:                jwtExpiry,
		tokenEmailConfirmExpiry:  tokenEmailConfirmExpiry,
		tokenPasswordResetExpiry: tokenPasswordResetExpiry,
	}
}

// Register creates an unconfirmed account and sends the confirmation link.
// The user cannot sign in until the link is followed.
func (s *AuthService) Register(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.ValidateEmail(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: &hashedPassword,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	confirmToken, err := s.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypeEmailConfirm,
		Token:     confirmToken,
		ExpiresAt: time.Now().Add(s.tokenEmailConfirmExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	err = s.emailService.SendConfirmationEmail(user.Email, confirmToken)
	if err != nil {
		slog.Error("failed to send confirmation email", "error", err, "email", user.Email)
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	slog.Info("user registered, confirmation pending", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// ConfirmEmail marks the account as confirmed. The token is consumed
// atomically, so a link can only be followed once.
func (s *AuthService) ConfirmEmail(token string) (*model.User, error) {
	tokenModel, err := s.tokenRepository.ConsumeToken(token)
	if err != nil {
		return nil, errors.New("invalid or expired confirmation link")
	}

	if tokenModel.Type != model.TokenTypeEmailConfirm {
		return nil, errors.New("invalid token type")
	}

	user, err := s.userRepository.ByID(tokenModel.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if user.EmailConfirmedAt == nil {
		now := time.Now()
		user.EmailConfirmedAt = &now
		err = s.userRepository.Update(user)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm email: %w", err)
		}

		err = s.emailService.SendWelcomeEmail(user.Email, emailLocalPart(user.Email))
		if err != nil {
			slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
		}
	}

	// Confirmation signs the user in, so this is their first login.
	if err := s.bootstrap(user); err != nil {
		return nil, err
	}

	slog.Info("email confirmed", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login authenticates with email and password. On success the user's
// profile stub and free subscription are guaranteed to exist; if either
// cannot be bootstrapped the login fails.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	err = s.ComparePassword(password, *user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsConfirmed() {
		return nil, ErrEmailNotConfirmed
	}

	if err := s.bootstrap(user); err != nil {
		return nil, err
	}

	return user, nil
}

// bootstrap guarantees the per-user rows that the rest of the app assumes:
// a profile stub named after the email local part, and a free subscription.
// A failed profile insert aborts the login rather than leaving a signed-in
// user without a profile.
func (s *AuthService) bootstrap(user *model.User) error {
	_, err := s.profileRepository.ByID(user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		profile := &model.Profile{
			ID:         user.ID,
			FullName:   emailLocalPart(user.Email),
			HeightUnit: model.HeightUnitCentimeters,
			WeightUnit: model.WeightUnitKilograms,
		}
		if err := s.profileRepository.Create(profile); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		slog.Info("profile stub created", "user_id", user.ID, "full_name", profile.FullName)
	}

	if err := s.subscriptionService.EnsureSubscription(user.ID); err != nil {
		return fmt.Errorf("failed to ensure subscription: %w", err)
	}

	return nil
}

// emailLocalPart returns everything before the @, the default display name
// for a fresh profile.
func emailLocalPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}

// RequestPasswordReset sends a reset link. Unknown emails are silently
// accepted to prevent enumeration.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.ValidateEmail(email); err != nil {
		return ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		slog.Info("password reset requested for non-existent email", "email", email)
		return nil
	}

	err = s.tokenRepository.DeleteByUserAndType(user.ID, model.TokenTypePasswordReset)
	if err != nil {
		slog.Warn("failed to delete old reset tokens", "error", err, "user_id", user.ID)
	}

	resetToken, err := s.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     resetToken,
		ExpiresAt: time.Now().Add(s.tokenPasswordResetExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	err = s.emailService.SendPasswordResetEmail(user.Email, resetToken)
	if err != nil {
		slog.Error("failed to send password reset email", "error", err, "email", user.Email)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("password reset link sent", "email", user.Email)
	return nil
}

// ResetPassword sets a new password from a reset link.
func (s *AuthService) ResetPassword(token, newPassword string) (*model.User, error) {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return nil, err
	}

	tokenModel, err := s.tokenRepository.ConsumeToken(token)
	if err != nil {
		return nil, errors.New("invalid or expired reset link")
	}

	if tokenModel.Type != model.TokenTypePasswordReset {
		return nil, errors.New("invalid token type")
	}

	user, err := s.userRepository.ByID(tokenModel.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = &hashedPassword

	// Following the emailed link also proves ownership of the address.
	if user.EmailConfirmedAt == nil {
		now := time.Now()
		user.EmailConfirmedAt = &now
	}

	err = s.userRepository.Update(user)
	if err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	// The reset flow signs the user in afterwards.
	if err := s.bootstrap(user); err != nil {
		return nil, err
	}

	slog.Info("password reset completed", "user_id", user.ID)
	return user, nil
}

// AuthenticateOAuth handles OAuth sign-in (Google). It creates a confirmed
// account if one doesn't exist, then runs the same bootstrap as Login.
func (s *AuthService) AuthenticateOAuth(email, provider string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.ValidateEmail(email); err != nil {
		return nil, ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to lookup user: %w", err)
		}

		now := time.Now()
		user = &model.User{
			ID:               uuid.New().String(),
			Email:            email,
			EmailConfirmedAt: &now, // OAuth provider has verified the email
			CreatedAt:        now,
			// password_hash is NULL for OAuth accounts
		}

		err = s.userRepository.Create(user)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		slog.Info("new OAuth user created", "email", email, "user_id", user.ID, "provider", provider)
	}

	// Existing accounts get their email confirmed by the provider.
	if user.EmailConfirmedAt == nil {
		now := time.Now()
		user.EmailConfirmedAt = &now
		err = s.userRepository.Update(user)
		if err != nil {
			slog.Warn("failed to mark email as confirmed", "error", err, "user_id", user.ID)
		}
	}

	if err := s.bootstrap(user); err != nil {
		return nil, err
	}

	slog.Info("user authenticated via OAuth", "user_id", user.ID, "email", user.Email, "provider", provider)
	return user, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) JWTExpiry() time.Duration {
	return s.jwtExpiry
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
