package models

import "time"

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"nombre" db:"nombre"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	CreatedAt    time.Time `json:"creado_en" db:"creado_en"`
}

// ProfileUpdate carries the optional fields of a profile change.
// A nil field is left untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// Empty reports whether no field was supplied
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil
}

// Session is the result of a successful login
type Session struct {
	Token     string
	TokenType string
	ExpiresIn time.Duration
}
