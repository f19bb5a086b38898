package model

import "time"

type ExerciseLog struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	ExerciseTitle   string    `db:"exercise_title" json:"exercise_title"`
	Sets            *int      `db:"sets" json:"sets"`
	Reps            *int      `db:"reps" json:"reps"`
	DurationSeconds *int      `db:"duration_seconds" json:"duration_seconds"`
	Notes           string    `db:"notes" json:"notes"`
	CompletedAt     time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
