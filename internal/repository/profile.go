package repository

import (
	"database/sql"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/jmoiron/sqlx"
)

type ProfileRepository interface {
	ByID(id string) (*model.Profile, error)
	Create(profile *model.Profile) error
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(profile *model.Profile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, full_name, gender, age, height, weight, fitness_level, height_unit, weight_unit, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, profile.ID, profile.FullName, profile.Gender, profile.Age, profile.Height, profile.Weight,
		profile.FitnessLevel, profile.HeightUnit, profile.WeightUnit, profile.IsPublic,
		profile.CreatedAt, profile.UpdatedAt)

	return err
}

// Upsert inserts the profile or replaces its fields when a row with the same
// id already exists. created_at is preserved on conflict, so repeating the
// same save yields the same stored row apart from updated_at.
func (r *profileRepository) Upsert(profile *model.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, full_name, gender, age, height, weight, fitness_level, height_unit, weight_unit, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT(id) DO UPDATE SET
			full_name = excluded.full_name,
			gender = excluded.gender,
			age = excluded.age,
			height = excluded.height,
			weight = excluded.weight,
			fitness_level = excluded.fitness_level,
			height_unit = excluded.height_unit,
			weight_unit = excluded.weight_unit,
			is_public = excluded.is_public,
			updated_at = excluded.updated_at
	`, profile.ID, profile.FullName, profile.Gender, profile.Age, profile.Height, profile.Weight,
		profile.FitnessLevel, profile.HeightUnit, profile.WeightUnit, profile.IsPublic,
		profile.CreatedAt, profile.UpdatedAt)

	return err
}
