package entity

import (
	"gorm.io/gorm"
)

const (
	MealLunch  = "lunch"
	MealDinner = "dinner"
)

func ValidMealType(s string) bool {
	return s == MealLunch || s == MealDinner
}

// Sabji is one selectable dish of a meal combination.
type Sabji struct {
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	IsSpecial bool   `json:"isSpecial"`
}

// Menu is the active combination for one meal period. One row per meal type;
// updates overwrite the row in place, last write wins.
type Menu struct {
	gorm.Model
	MealType     string   `gorm:"uniqueIndex;not null" json:"mealType"`
	ListOfSabjis []Sabji  `gorm:"serializer:json" json:"listOfSabjis"`
	BaseOptions  []string `gorm:"serializer:json" json:"baseOptions"`
	BasePrice    int64    `gorm:"default:60" json:"basePrice"`
}

// HasSpecial reports whether any of the named sabjis is flagged special on
// this menu. Unknown names are ignored.
func (m *Menu) HasSpecial(names []string) bool {
	for _, s := range m.ListOfSabjis {
		if !s.IsSpecial {
			continue
		}
		for _, n := range names {
			if n == s.Name {
				return true
			}
		}
	}
	return false
}
