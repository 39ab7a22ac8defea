package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/vinaytz/theSkFoodBackend/entity"
)

// SeedAdmin creates the admin account on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Picture:  entity.DefaultAvatar,
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenus guarantees an active menu row per meal period so pricing has a
// base price to read before the admin publishes anything.
func SeedMenus() error {
	for _, mealType := range []string{entity.MealLunch, entity.MealDinner} {
		m := entity.Menu{
			MealType:    mealType,
			BaseOptions: []string{"5 Roti", "3 Roti + Rice"},
			BasePrice:   60,
		}
		if err := db.Where(entity.Menu{MealType: mealType}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
