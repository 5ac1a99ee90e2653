package configs

import (
	"foodiehub/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Address{}, &entity.PaymentCard{},
		&entity.Category{}, &entity.MenuItem{}, &entity.Topping{}, &entity.SideOption{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
