package entity

import (
	"gorm.io/gorm"
)

const DefaultAvatar = "https://static.vecteezy.com/system/resources/thumbnails/048/926/084/small_2x/silver-membership-icon-default-avatar-profile-icon-membership-icon-social-media-user-image-illustration-vector.jpg"

// Address is a saved delivery location. Stored as a JSON column on the user
// (saved addresses) and denormalized onto each order at checkout.
type Address struct {
	Label       string  `json:"label"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Picture  string `json:"picture"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	SavedAddresses []Address `gorm:"serializer:json" json:"savedAddresses"`

	Orders []Order `json:"-"`
}
