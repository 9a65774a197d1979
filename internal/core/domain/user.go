package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultImageURL is the placeholder avatar assigned when signup carries no image.
const DefaultImageURL = "https://res.cloudinary.com/dbe49mmnp/image/upload/v1724936100/fybrc036gvfqnemi91sl.png"

// User is the account aggregate. The password digest is never serialized:
// json tag "-" plus repository-level projection keep it out of every read path.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ImageURL     string    `json:"image"`
	Role         string    `json:"role"`
	IsAdmin      bool      `json:"isAdmin"`
	IsActive     bool      `json:"isActive"`
	IsBanned     bool      `json:"isBanned"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsValidID reports whether id has the syntactic shape of a store-assigned
// identifier (24 hex characters). A well-shaped id may still refer to no
// record; a malformed one is rejected before any store round-trip.
func IsValidID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
