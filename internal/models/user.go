package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash []byte `json:"-" db:"password_hash"`   // bcrypt hash
	Email        string `json:"email" db:"email"`       // Unique email
}
