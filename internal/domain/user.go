package domain

import "time"

// User represents a registered user. The application only distinguishes
// the author of a resource from any other authenticated user and from
// anonymous visitors; there are no roles.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns the name shown next to the user's content,
// falling back to the username when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
