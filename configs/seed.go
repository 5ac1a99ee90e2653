package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"foodiehub/entity"
)

// SeedAdmin creates the back-office user on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

type seedSide struct {
	name  string
	price int64
}

type seedItem struct {
	name     string
	detail   string
	price    int64
	picture  string
	category string
	rating   float64
	prepMin  int
	toppings []string
	sides    []seedSide
}

// Prices in minor units (cents).
var catalog = []seedItem{
	{
		name: "Classic Burger", detail: "Beef patty, cheddar, house sauce",
		price: 1000, picture: "burger_classic.png", category: "Burgers",
		rating: 4.6, prepMin: 15,
		toppings: []string{"Lettuce", "Tomato", "Onion", "Pickles"},
		sides:    []seedSide{{"French Fries", 250}, {"Onion Rings", 300}, {"Coleslaw", 150}},
	},
	{
		name: "Double Smash Burger", detail: "Two smashed patties, double cheese",
		price: 1450, picture: "burger_double.png", category: "Burgers",
		rating: 4.8, prepMin: 18,
		toppings: []string{"Lettuce", "Tomato", "Jalapeno", "Bacon Bits"},
		sides:    []seedSide{{"French Fries", 250}, {"Cheese Dip", 200}},
	},
	{
		name: "Pepperoni Pizza", detail: "Tomato base, mozzarella, pepperoni",
		price: 1500, picture: "pizza_pepperoni.png", category: "Pizza",
		rating: 4.7, prepMin: 20,
		toppings: []string{"Extra Cheese", "Oregano", "Chili Flakes"},
		sides:    []seedSide{{"Garlic Bread", 300}, {"Dipping Sauce", 100}},
	},
	{
		name: "Margherita Pizza", detail: "Tomato, mozzarella, fresh basil",
		price: 1300, picture: "pizza_margherita.png", category: "Pizza",
		rating: 4.5, prepMin: 20,
		toppings: []string{"Extra Cheese", "Basil"},
		sides:    []seedSide{{"Garlic Bread", 300}},
	},
	{
		name: "Chicken Wrap", detail: "Grilled chicken, garlic mayo, flatbread",
		price: 850, picture: "wrap_chicken.png", category: "Wraps",
		rating: 4.3, prepMin: 10,
		toppings: []string{"Lettuce", "Tomato", "Hot Sauce"},
		sides:    []seedSide{{"Potato Wedges", 250}, {"Side Salad", 200}},
	},
	{
		name: "Pad Thai", detail: "Rice noodles, tamarind, peanuts",
		price: 1100, picture: "pad_thai.png", category: "Noodles",
		rating: 4.4, prepMin: 12,
		toppings: []string{"Crushed Peanuts", "Bean Sprouts", "Lime"},
		sides:    []seedSide{{"Spring Rolls", 350}, {"Tom Yum Soup", 400}},
	},
	{
		name: "Iced Latte", detail: "Double espresso over milk and ice",
		price: 450, picture: "iced_latte.png", category: "Drinks",
		rating: 4.2, prepMin: 5,
		sides: []seedSide{{"Extra Shot", 100}, {"Oat Milk", 50}},
	},
	{
		name: "Mango Smoothie", detail: "Fresh mango, yogurt, honey",
		price: 500, picture: "smoothie_mango.png", category: "Drinks",
		rating: 4.6, prepMin: 5,
	},
}

// SeedMenu loads the static catalog. FirstOrCreate keyed on names
// keeps restarts idempotent.
func SeedMenu() error {
	db := DB()

	cats := make(map[string]uint)
	for _, it := range catalog {
		if _, ok := cats[it.category]; ok {
			continue
		}
		var c entity.Category
		if err := db.FirstOrCreate(&c, entity.Category{Name: it.category}).Error; err != nil {
			return err
		}
		cats[it.category] = c.ID
	}

	for _, it := range catalog {
		var m entity.MenuItem
		err := db.Where(entity.MenuItem{Name: it.name}).
			Attrs(entity.MenuItem{
				Detail:      it.detail,
				Price:       it.price,
				Picture:     it.picture,
				CategoryID:  cats[it.category],
				Rating:      it.rating,
				PrepMinutes: it.prepMin,
			}).
			FirstOrCreate(&m).Error
		if err != nil {
			return err
		}

		for _, t := range it.toppings {
			if err := db.FirstOrCreate(&entity.Topping{}, entity.Topping{MenuItemID: m.ID, Name: t}).Error; err != nil {
				return err
			}
		}
		for _, s := range it.sides {
			var side entity.SideOption
			err := db.Where(entity.SideOption{MenuItemID: m.ID, Name: s.name}).
				Attrs(entity.SideOption{Price: s.price}).
				FirstOrCreate(&side).Error
			if err != nil {
				return err
			}
		}
	}

	log.Println("catalog seeded")
	return nil
}
