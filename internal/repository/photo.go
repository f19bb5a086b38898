package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrPhotoNotFound = errors.New("progress photo not found")
)

type PhotoRepository interface {
	Create(photo *model.ProgressPhoto) error
	ByID(id, userID string) (*model.ProgressPhoto, error)
	ByUserID(userID string) ([]*model.ProgressPhoto, error)
	ByUserIDAndType(userID, photoType string) ([]*model.ProgressPhoto, error)
	CountByUserID(userID string) (int, error)
	Delete(id, userID string) error
}

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *model.ProgressPhoto) error {
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	if photo.TakenAt.IsZero() {
		photo.TakenAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO progress_photos (id, user_id, photo_url, object_key, photo_type, taken_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, photo.ID, photo.UserID, photo.PhotoURL, photo.ObjectKey, photo.PhotoType,
		photo.TakenAt, photo.Notes, photo.CreatedAt)

	return err
}

func (r *photoRepository) ByID(id, userID string) (*model.ProgressPhoto, error) {
	var photo model.ProgressPhoto
	err := r.db.Get(&photo, `SELECT * FROM progress_photos WHERE id = $1 AND user_id = $2`, id, userID)

	if err == sql.ErrNoRows {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

func (r *photoRepository) ByUserID(userID string) ([]*model.ProgressPhoto, error) {
	var photos []*model.ProgressPhoto
	err := r.db.Select(&photos, `
		SELECT * FROM progress_photos
		WHERE user_id = $1
		ORDER BY taken_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	return photos, nil
}

func (r *photoRepository) ByUserIDAndType(userID, photoType string) ([]*model.ProgressPhoto, error) {
	var photos []*model.ProgressPhoto
	err := r.db.Select(&photos, `
		SELECT * FROM progress_photos
		WHERE user_id = $1 AND photo_type = $2
		ORDER BY taken_at DESC
	`, userID, photoType)
	if err != nil {
		return nil, err
	}

	return photos, nil
}

func (r *photoRepository) CountByUserID(userID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM progress_photos WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *photoRepository) Delete(id, userID string) error {
	result, err := r.db.Exec(`DELETE FROM progress_photos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPhotoNotFound
	}

	return nil
}
