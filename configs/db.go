package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) error {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Menu{}, &entity.MenuHistory{},
		&entity.Order{},
	)
}
