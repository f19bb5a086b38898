package model

import "time"

type ProgressPhoto struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	PhotoURL  string    `db:"photo_url" json:"photo_url"`
	ObjectKey string    `db:"object_key" json:"-"`
	PhotoType string    `db:"photo_type" json:"photo_type"`
	TakenAt   time.Time `db:"taken_at" json:"taken_at"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	PhotoTypeFront = "front"
	PhotoTypeBack  = "back"
	PhotoTypeSide  = "side"
)

func ValidPhotoType(t string) bool {
	return t == PhotoTypeFront || t == PhotoTypeBack || t == PhotoTypeSide
}
