package configs

import (
	"log"

	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

// SeedRestaurants loads the restaurant and menu reference data on first
// boot. A restaurant's menu interleaves section headers with orderable
// items; SortOrder fixes the display order.
func SeedRestaurants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("restaurants already seeded")
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:         "Chez Marco",
			Image:        "/uploads/static/chez-marco.jpg",
			Category:     "Italien",
			Rating:       4.6,
			DeliveryTime: "25-35 min",
			DeliveryFee:  2.5,
			Address:      "12 rue des Carmes, Paris",
			Menu: []entity.Menu{
				{Kind: entity.MenuKindSection, Name: "Pizzas", SortOrder: 1},
				{
					Kind: entity.MenuKindItem, Name: "Margherita", SortOrder: 2,
					Description: "Tomate, mozzarella, basilic", Price: 9.5,
					Options: []entity.MenuOption{
						{Name: "Taille", Required: true, Choices: []entity.MenuOptionChoice{
							{Name: "Moyenne", Price: 0},
							{Name: "Grande", Price: 3},
						}},
					},
				},
				{
					Kind: entity.MenuKindItem, Name: "Quattro Formaggi", SortOrder: 3,
					Description: "Quatre fromages", Price: 12,
				},
				{Kind: entity.MenuKindSection, Name: "Desserts", SortOrder: 4},
				{
					Kind: entity.MenuKindItem, Name: "Tiramisu", SortOrder: 5,
					Description: "Maison", Price: 5.5,
				},
			},
		},
		{
			Name:         "Sushi Yama",
			Image:        "/uploads/static/sushi-yama.jpg",
			Category:     "Japonais",
			Rating:       4.8,
			DeliveryTime: "30-40 min",
			DeliveryFee:  3.5,
			Address:      "4 avenue de l'Opéra, Paris",
			Menu: []entity.Menu{
				{Kind: entity.MenuKindSection, Name: "Plateaux", SortOrder: 1},
				{
					Kind: entity.MenuKindItem, Name: "Plateau découverte", SortOrder: 2,
					Description: "18 pièces", Price: 16.9,
					Options: []entity.MenuOption{
						{Name: "Accompagnement", Choices: []entity.MenuOptionChoice{
							{Name: "Soupe miso", Price: 2},
							{Name: "Salade de chou", Price: 1.5},
						}},
					},
				},
				{
					Kind: entity.MenuKindItem, Name: "California saumon x6", SortOrder: 3,
					Price: 6.2,
				},
			},
		},
		{
			Name:         "Burger Factory",
			Image:        "/uploads/static/burger-factory.jpg",
			Category:     "Burgers",
			Rating:       4.3,
			DeliveryTime: "20-30 min",
			DeliveryFee:  3.0,
			Address:      "27 boulevard Saint-Michel, Paris",
			Menu: []entity.Menu{
				{Kind: entity.MenuKindSection, Name: "Burgers", SortOrder: 1},
				{
					Kind: entity.MenuKindItem, Name: "Classic Cheese", SortOrder: 2,
					Description: "Boeuf, cheddar, oignons", Price: 8.9,
					Options: []entity.MenuOption{
						{Name: "Sauce", Choices: []entity.MenuOptionChoice{
							{Name: "Ketchup", Price: 0},
							{Name: "Barbecue", Price: 0.5},
						}},
					},
				},
				{
					Kind: entity.MenuKindItem, Name: "Menu frites + boisson", SortOrder: 3,
					Price: 4.5,
				},
			},
		},
	}

	return db.Create(&restaurants).Error
}
