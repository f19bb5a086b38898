package repository

import (
	"errors"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrExerciseLogNotFound = errors.New("exercise log not found")
)

type ExerciseLogRepository interface {
	Create(log *model.ExerciseLog) error
	ByUserID(userID string) ([]*model.ExerciseLog, error)
	Delete(id, userID string) error
}

type exerciseLogRepository struct {
	db *sqlx.DB
}

func NewExerciseLogRepository(db *sqlx.DB) ExerciseLogRepository {
	return &exerciseLogRepository{db: db}
}

func (r *exerciseLogRepository) Create(log *model.ExerciseLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	if log.CompletedAt.IsZero() {
		log.CompletedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO exercise_logs (id, user_id, exercise_title, sets, reps, duration_seconds, notes, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, log.ID, log.UserID, log.ExerciseTitle, log.Sets, log.Reps, log.DurationSeconds,
		log.Notes, log.CompletedAt, log.CreatedAt)

	return err
}

func (r *exerciseLogRepository) ByUserID(userID string) ([]*model.ExerciseLog, error) {
	var logs []*model.ExerciseLog
	err := r.db.Select(&logs, `
		SELECT * FROM exercise_logs
		WHERE user_id = $1
		ORDER BY completed_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// Delete removes a log entry. The user_id check keeps deletes owner-scoped.
func (r *exerciseLogRepository) Delete(id, userID string) error {
	result, err := r.db.Exec(`DELETE FROM exercise_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExerciseLogNotFound
	}

	return nil
}
