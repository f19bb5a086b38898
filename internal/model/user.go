package model

import (
	"time"
)

type User struct {
	ID               string     `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	PasswordHash     *string    `db:"password_hash" json:"-"` // Nullable for OAuth accounts
	EmailConfirmedAt *time.Time `db:"email_confirmed_at" json:"email_confirmed_at"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// IsConfirmed reports whether the confirmation link has been followed.
// Sign-up leaves this false until the emailed link is visited.
func (u *User) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
