package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.PaymentMethod{},
		&entity.Restaurant{},
		&entity.Menu{}, &entity.MenuOption{}, &entity.MenuOptionChoice{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemOption{}, &entity.OrderRestaurant{},
	)
}
