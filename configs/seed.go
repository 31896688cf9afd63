package configs

import (
	"github.com/rs/zerolog/log"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
)

// SeedMenuItems gives an empty database a few starter items.
func SeedMenuItems() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("menu items already present, skipping seed")
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Classic Burger", Description: "Beef patty with lettuce, tomato and house sauce", Price: 9.99, Type: "Main Course"},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: 7.49, Type: "Appetizer"},
		{Name: "Chocolate Lava Cake", Description: "Warm cake with molten center", Price: 5.99, Type: "Dessert"},
	}
	return db.Create(&items).Error
}
