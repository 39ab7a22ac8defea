package entity

import (
	"gorm.io/gorm"
)

// Base combination choices for a thali.
const (
	BaseRoti     = "roti"
	BaseRotiRice = "roti+rice"
	BaseRice     = "rice"
)

func ValidBase(s string) bool {
	return s == BaseRoti || s == BaseRotiRice || s == BaseRice
}

// Order is a finalized thali placed at checkout. Append-only: rows are never
// deleted and status is the only field mutated after creation.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	MenuID uint `gorm:"not null" json:"menuId"`
	Menu   Menu `json:"-"`

	SabjisSelected []string `gorm:"serializer:json" json:"sabjisSelected"`
	Base           string   `gorm:"not null" json:"base"`
	ExtraRoti      int      `gorm:"default:0" json:"extraRoti"`
	IsSpecial      bool     `gorm:"default:false" json:"isSpecial"`
	Quantity       int      `gorm:"default:1" json:"quantity"`

	TotalPrice int64 `gorm:"not null" json:"totalPrice"`
	TipMoney   int64 `json:"tipMoney,omitempty"`

	Address Address `gorm:"serializer:json" json:"address"`

	// OTP is shown to the customer and matched by the delivery agent before
	// the final transition to delivered.
	OTP string `gorm:"column:otp;not null" json:"otp"`

	Status OrderStatus `gorm:"not null;default:Confirmed" json:"status"`
}
