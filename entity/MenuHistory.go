package entity

import (
	"gorm.io/gorm"
)

// MenuHistory is an immutable snapshot of a menu, appended when an update is
// flagged as a new meal. Listing is capped to the most recent entries.
type MenuHistory struct {
	gorm.Model
	MealType     string   `gorm:"not null" json:"mealType"`
	ListOfSabjis []Sabji  `gorm:"serializer:json" json:"listOfSabjis"`
	BaseOptions  []string `gorm:"serializer:json" json:"baseOptions"`
	BasePrice    int64    `json:"basePrice"`
}
