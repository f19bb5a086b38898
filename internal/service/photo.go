package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/storage"
	"github.com/fitposture/fitposture/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrPhotoLimitReached = errors.New("progress photo limit reached for your plan")
	ErrInvalidPhotoType  = errors.New("invalid photo type")
	ErrInvalidPhotoFile  = errors.New("invalid photo file")
)

type PhotoService struct {
	photoRepo repository.PhotoRepository
	storage   storage.Storage
}

func NewPhotoService(photoRepo repository.PhotoRepository, storage storage.Storage) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		storage:   storage,
	}
}

// PhotoInput carries the upload metadata alongside the multipart file.
type PhotoInput struct {
	PhotoType string
	TakenAt   string
	Notes     string
}

// Upload validates the image, enforces the subscription's photo limit,
// stores the object and records the row. The S3 object is removed again if
// the row insert fails.
func (s *PhotoService) Upload(userID string, sub *model.Subscription, header *multipart.FileHeader, input PhotoInput) (*model.ProgressPhoto, error) {
	if !model.ValidPhotoType(input.PhotoType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhotoType, input.PhotoType)
	}

	if err := validation.ValidateFile(header, validation.PhotoConstraints); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhotoFile, err)
	}

	limit := sub.PhotoLimit()
	if limit >= 0 {
		count, err := s.photoRepo.CountByUserID(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count photos: %w", err)
		}
		if count >= limit {
			return nil, ErrPhotoLimitReached
		}
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("progress-photos/%s-%s%s", userID, uuid.New().String(), ext)

	if err := s.storage.Save(key, file); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &model.ProgressPhoto{
		UserID:    userID,
		PhotoURL:  s.storage.PublicURL(key),
		ObjectKey: key,
		PhotoType: input.PhotoType,
		Notes:     input.Notes,
	}

	if input.TakenAt != "" {
		if taken, err := time.Parse("2006-01-02", input.TakenAt); err == nil {
			photo.TakenAt = taken
		}
	}

	if err := s.photoRepo.Create(photo); err != nil {
		if delErr := s.storage.Delete(key); delErr != nil {
			slog.Warn("failed to clean up orphaned photo object", "error", delErr, "key", key)
		}
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}

	return photo, nil
}

// ByUserID lists the user's photos, optionally filtered by type. URLs are
// re-presigned on read so stored links never go stale.
func (s *PhotoService) ByUserID(userID, photoType string) ([]*model.ProgressPhoto, error) {
	var (
		photos []*model.ProgressPhoto
		err    error
	)

	if photoType != "" {
		if !model.ValidPhotoType(photoType) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPhotoType, photoType)
		}
		photos, err = s.photoRepo.ByUserIDAndType(userID, photoType)
	} else {
		photos, err = s.photoRepo.ByUserID(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	for _, photo := range photos {
		if photo.ObjectKey != "" {
			photo.PhotoURL = s.storage.PublicURL(photo.ObjectKey)
		}
	}

	return photos, nil
}

// Delete removes the row and the stored object. A missing S3 object is not
// an error; the row is the source of truth.
func (s *PhotoService) Delete(id, userID string) error {
	photo, err := s.photoRepo.ByID(id, userID)
	if err != nil {
		return err
	}

	if err := s.photoRepo.Delete(id, userID); err != nil {
		return err
	}

	if photo.ObjectKey != "" {
		if err := s.storage.Delete(photo.ObjectKey); err != nil {
			slog.Warn("failed to delete photo object", "error", err, "key", photo.ObjectKey)
		}
	}

	return nil
}
