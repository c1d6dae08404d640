package domain

import "time"

// Sizes accepted by the catalog.
var ProductSizes = []string{"S", "M", "L", "XL"}

// ValidSize reports whether s is one of the accepted product sizes.
func ValidSize(s string) bool {
	for _, v := range ProductSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Invariant: Liked always equals
// len(UsersLiked); both are updated in a single guarded write.
type Product struct {
	ID          string    `json:"id" bson:"-"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Size        string    `json:"size" bson:"size"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Liked       int       `json:"liked" bson:"liked"`
	UsersLiked  []string  `json:"usersLiked" bson:"users_liked"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
