package models

// DefaultUserName is stored when a user registers without a display name.
const DefaultUserName = "Anonymous"

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
}
