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
	ErrAssessmentNotFound = errors.New("posture assessment not found")
)

type AssessmentRepository interface {
	ByUserID(userID string) (*model.PostureAssessment, error)
	Upsert(assessment *model.PostureAssessment) error
}

type assessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) ByUserID(userID string) (*model.PostureAssessment, error) {
	var assessment model.PostureAssessment
	err := r.db.Get(&assessment, `SELECT * FROM posture_assessments WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &assessment, nil
}

// Upsert replaces the user's current assessment. The user_id UNIQUE
// constraint keeps one row per user.
func (r *assessmentRepository) Upsert(assessment *model.PostureAssessment) error {
	now := time.Now()
	if assessment.ID == "" {
		assessment.ID = uuid.New().String()
	}
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = now
	}
	if assessment.AssessmentDate.IsZero() {
		assessment.AssessmentDate = now
	}
	assessment.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO posture_assessments (id, user_id, ankle, foot, knee, hip, spine, neck, assessment_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT(user_id) DO UPDATE SET
			ankle = excluded.ankle,
			foot = excluded.foot,
			knee = excluded.knee,
			hip = excluded.hip,
			spine = excluded.spine,
			neck = excluded.neck,
			assessment_date = excluded.assessment_date,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, assessment.ID, assessment.UserID, assessment.Ankle, assessment.Foot, assessment.Knee,
		assessment.Hip, assessment.Spine, assessment.Neck, assessment.AssessmentDate,
		assessment.Notes, assessment.CreatedAt, assessment.UpdatedAt)

	return err
}
