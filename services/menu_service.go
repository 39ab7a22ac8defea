package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/repository"
)

var ErrBadMealType = errors.New("mealType must be lunch or dinner")

const historyLogLimit = 5

type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
	Log  *zap.Logger
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, log *zap.Logger) *MenuService {
	return &MenuService{DB: db, Repo: repo, Log: log}
}

func (s *MenuService) SeeMenu(mealType string) ([]entity.Menu, error) {
	if !entity.ValidMealType(mealType) {
		return nil, ErrBadMealType
	}
	return s.Repo.FindByMealType(mealType)
}

// CreateMeal replaces the active entry for the meal period (full overwrite,
// not a merge). When flagged as a new meal, an immutable snapshot is appended
// to the history log.
func (s *MenuService) CreateMeal(mealType string, basePrice int64, sabjis []entity.Sabji, isNewMeal bool) (*entity.Menu, error) {
	if !entity.ValidMealType(mealType) {
		return nil, ErrBadMealType
	}
	if basePrice <= 0 {
		basePrice = 60
	}

	var m *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		m, err = s.Repo.Upsert(tx, mealType, sabjis, basePrice)
		if err != nil {
			return err
		}
		if isNewMeal {
			return s.Repo.AppendHistory(tx, &entity.MenuHistory{
				MealType:     mealType,
				ListOfSabjis: sabjis,
				BaseOptions:  m.BaseOptions,
				BasePrice:    basePrice,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("menu updated",
		zap.String("mealType", mealType),
		zap.Int64("basePrice", basePrice),
		zap.Int("sabjis", len(sabjis)),
		zap.Bool("isNewMeal", isNewMeal))
	return m, nil
}

func (s *MenuService) HistoryLog() ([]entity.MenuHistory, error) {
	return s.Repo.History(historyLogLimit)
}
