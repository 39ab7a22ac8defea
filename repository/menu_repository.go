package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// FindByMealType returns the active rows for a meal period. At most one row
// exists per period, but the list shape is kept for the frontend.
func (r *MenuRepository) FindByMealType(mealType string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("meal_type = ?", mealType).Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ActiveMenu(mealType string) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("meal_type = ?", mealType).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert replaces the active entry for the meal period in place. Concurrent
// updates to the same period race; last write wins.
func (r *MenuRepository) Upsert(tx *gorm.DB, mealType string, sabjis []entity.Sabji, basePrice int64) (*entity.Menu, error) {
	var m entity.Menu
	err := tx.Where("meal_type = ?", mealType).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = entity.Menu{
			MealType:     mealType,
			ListOfSabjis: sabjis,
			BaseOptions:  []string{"5 Roti", "3 Roti + Rice"},
			BasePrice:    basePrice,
		}
		if err := tx.Create(&m).Error; err != nil {
			return nil, err
		}
		return &m, nil
	}
	if err != nil {
		return nil, err
	}

	m.ListOfSabjis = sabjis
	m.BasePrice = basePrice
	if err := tx.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) AppendHistory(tx *gorm.DB, h *entity.MenuHistory) error {
	return tx.Create(h).Error
}

// History returns the newest snapshots, capped at limit.
func (r *MenuRepository) History(limit int) ([]entity.MenuHistory, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []entity.MenuHistory
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}
