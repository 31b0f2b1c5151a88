package domain

import "time"

// User is a stored account. PasswordHash is PHC encoded (argon2id or bcrypt)
// and never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Profile is the outward-facing view of a User.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile strips everything but the identity fields.
func (u User) Profile() Profile {
	return Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ProfileUpdate holds the fields a user may change. Empty means untouched.
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Password == ""
}
