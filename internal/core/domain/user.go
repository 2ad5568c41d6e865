package domain

import "time"

// User models a registered account. The password is only ever held as the
// opaque bcrypt hash; plaintext never reaches this struct.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
