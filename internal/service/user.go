package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrActiveSubscription     = errors.New("cannot delete account with active subscription")
)

type UserService struct {
	userRepository      repository.UserRepository
	profileRepository   repository.ProfileRepository
	photoService        *PhotoService
	emailService        *EmailService
	subscriptionService *SubscriptionService
}

func NewUserService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	photoService *PhotoService,
	emailService *EmailService,
	subscriptionService *SubscriptionService,
) *UserService {
	return &UserService{
		userRepository:      userRepository,
		profileRepository:   profileRepository,
		photoService:        photoService,
		emailService:        emailService,
		subscriptionService: subscriptionService,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return fmt.Errorf("this account signs in with Google and has no password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCurrentPassword
	}

	// Validate new password
	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hashedPassword)
	user.PasswordHash = &hashStr

	err = s.userRepository.Update(user)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *UserService) DeleteAccount(userID string) error {
	// Check if user has an active paid subscription or current period is still running
	subscription, err := s.subscriptionService.Subscription(userID)
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}

	if subscription.PlanID != model.SubscriptionPlanFree &&
		(subscription.Status == model.SubscriptionStatusActive ||
			(subscription.CurrentPeriodEnd != nil && subscription.CurrentPeriodEnd.After(time.Now()))) {
		return ErrActiveSubscription
	}

	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	name := "User"
	profile, err := s.profileRepository.ByID(userID)
	if err != nil {
		slog.Warn("failed to get profile for deletion email", "user_id", userID, "error", err)
	} else if profile.FullName != "" {
		name = profile.FullName
	}

	// Remove stored photo objects before the rows cascade away.
	photos, err := s.photoService.ByUserID(userID, "")
	if err != nil {
		slog.Warn("failed to list photos for deletion", "user_id", userID, "error", err)
	}
	for _, photo := range photos {
		if err := s.photoService.Delete(photo.ID, userID); err != nil {
			slog.Warn("failed to delete progress photo", "user_id", userID, "photo_id", photo.ID, "error", err)
		}
	}

	err = s.emailService.SendAccountDeletedEmail(user.Email, name)
	if err != nil {
		slog.Warn("failed to send account deleted email", "user_id", userID, "email", user.Email, "error", err)
	}

	// Delete user from database
	// Foreign key CASCADE will automatically delete:
	// - profiles (ON DELETE CASCADE)
	// - tokens (ON DELETE CASCADE)
	// - posture_assessments, exercise_logs, progress_photos (ON DELETE CASCADE)
	// - subscriptions (ON DELETE CASCADE)
	err = s.userRepository.Delete(userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
