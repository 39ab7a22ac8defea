package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/repository"
	"github.com/vinaytz/theSkFoodBackend/services"
)

func newMenuService(db *gorm.DB) *services.MenuService {
	return services.NewMenuService(db, repository.NewMenuRepository(db), zap.NewNop())
}

func TestCreateMealOverwritesInPlace(t *testing.T) {
	db := setupDB(t)
	svc := newMenuService(db)

	first := []entity.Sabji{{Name: "Aloo Gobi"}, {Name: "Dal Fry"}}
	_, err := svc.CreateMeal(entity.MealLunch, 60, first, false)
	require.NoError(t, err)

	second := []entity.Sabji{{Name: "Paneer Butter Masala", IsSpecial: true}}
	m, err := svc.CreateMeal(entity.MealLunch, 80, second, false)
	require.NoError(t, err)
	assert.Equal(t, int64(80), m.BasePrice)
	assert.Equal(t, second, m.ListOfSabjis)

	// still a single active row for the period
	menus, err := svc.SeeMenu(entity.MealLunch)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, second, menus[0].ListOfSabjis)
}

func TestCreateMealRejectsUnknownMealType(t *testing.T) {
	db := setupDB(t)
	svc := newMenuService(db)

	_, err := svc.CreateMeal("breakfast", 60, nil, false)
	assert.ErrorIs(t, err, services.ErrBadMealType)

	_, err = svc.SeeMenu("breakfast")
	assert.ErrorIs(t, err, services.ErrBadMealType)
}

func TestHistoryLogAppendAndCap(t *testing.T) {
	db := setupDB(t)
	svc := newMenuService(db)

	// not flagged as a new meal: no snapshot
	_, err := svc.CreateMeal(entity.MealDinner, 60, []entity.Sabji{{Name: "Dal Fry"}}, false)
	require.NoError(t, err)
	log, err := svc.HistoryLog()
	require.NoError(t, err)
	assert.Empty(t, log)

	for i := 0; i < 7; i++ {
		sabjis := []entity.Sabji{{Name: fmt.Sprintf("Sabji %d", i)}}
		_, err := svc.CreateMeal(entity.MealDinner, 60, sabjis, true)
		require.NoError(t, err)
	}

	log, err = svc.HistoryLog()
	require.NoError(t, err)
	assert.Len(t, log, 5, "history log is capped at the most recent 5")
}
