package domain

import "time"

// Role tags. Every account starts with RoleUser; RoleAdmin is granted and
// revoked through the role management service.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a registered account. The cart is embedded in the user
// document so every cart mutation is a single-document write.
type User struct {
	ID           string    `json:"id" bson:"-"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Roles        []string  `json:"roles" bson:"roles"`
	Cart         Cart      `json:"cart" bson:"cart"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the role tag is present in the user's role set.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
