package configs

import (
	"fmt"
	"time"

	"github.com/EswarAdityaReddy/Foodie/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func strp(s string) *string { return &s }

func pexels(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=600"
}

// Categories are matched against Restaurant.Cuisines by name.
var Categories = []entity.Category{
	{ID: "c1", Name: "Pizza", Icon: "🍕"},
	{ID: "c2", Name: "Burger", Icon: "🍔"},
	{ID: "c3", Name: "Indian", Icon: "🍛"},
	{ID: "c4", Name: "Chinese", Icon: "🥡"},
	{ID: "c5", Name: "Italian", Icon: "🍝"},
	{ID: "c6", Name: "Desserts", Icon: "🍰"},
	{ID: "c7", Name: "Healthy", Icon: "🥗"},
	{ID: "c8", Name: "Biryani", Icon: "🍚"},
}

var Restaurants = []entity.Restaurant{
	{ID: "r1", Name: "Pizza Planet", Image: pexels("1146760"), Cuisines: []string{"Pizza", "Italian", "Fast Food"},
		Rating: 4.3, DeliveryTime: "25-30 min", PriceRange: 2, Distance: "1.2 km", Promotion: strp("50% OFF up to ₹100")},
	{ID: "r2", Name: "Spice Paradise", Image: pexels("2474661"), Cuisines: []string{"Indian", "Biryani", "North Indian"},
		Rating: 4.5, DeliveryTime: "30-35 min", PriceRange: 2, Distance: "2.5 km"},
	{ID: "r3", Name: "Burger King", Image: pexels("1639557"), Cuisines: []string{"Burger", "Fast Food"},
		Rating: 4.1, DeliveryTime: "20-25 min", PriceRange: 1, Distance: "0.8 km", Promotion: strp("Free delivery")},
	{ID: "r4", Name: "Dragon Wok", Image: pexels("2347311"), Cuisines: []string{"Chinese", "Asian"},
		Rating: 4.0, DeliveryTime: "35-40 min", PriceRange: 2, Distance: "3.1 km", IsNew: true},
	{ID: "r5", Name: "La Trattoria", Image: pexels("1279330"), Cuisines: []string{"Italian", "Continental"},
		Rating: 4.7, DeliveryTime: "40-45 min", PriceRange: 3, Distance: "4.0 km"},
	{ID: "r6", Name: "Sweet Tooth", Image: pexels("291528"), Cuisines: []string{"Desserts", "Bakery"},
		Rating: 4.4, DeliveryTime: "15-20 min", PriceRange: 1, Distance: "1.0 km", IsNew: true},
	{ID: "r7", Name: "Green Bowl", Image: pexels("1640777"), Cuisines: []string{"Healthy", "Salads"},
		Rating: 4.2, DeliveryTime: "20-30 min", PriceRange: 2, Distance: "1.8 km", Promotion: strp("20% OFF on first order")},
	{ID: "r8", Name: "Biryani House", Image: pexels("12737656"), Cuisines: []string{"Biryani", "Indian", "Mughlai"},
		Rating: 4.6, DeliveryTime: "30-40 min", PriceRange: 2, Distance: "2.2 km"},
}

func menuItem(id, restaurantID, name, desc string, price int64, category string, veg, spicy, best bool) entity.MenuItem {
	return entity.MenuItem{
		ID: id, RestaurantID: restaurantID, Name: name, Description: desc,
		Price: decimal.NewFromInt(price), Category: category,
		IsVeg: veg, IsSpicy: spicy, IsBestseller: best,
	}
}

var MenuItems = []entity.MenuItem{
	menuItem("m1", "r1", "Margherita Pizza", "Classic tomato sauce, mozzarella and basil", 299, "Pizzas", true, false, true),
	menuItem("m2", "r1", "Pepperoni Pizza", "Loaded with pepperoni and cheese", 399, "Pizzas", false, true, true),
	menuItem("m3", "r1", "Garlic Bread", "Toasted bread with garlic butter", 149, "Sides", true, false, false),
	menuItem("m4", "r1", "Coke", "Chilled 500ml bottle", 60, "Beverages", true, false, false),
	menuItem("m5", "r2", "Butter Chicken", "Creamy tomato gravy with tender chicken", 349, "Main Course", false, false, true),
	menuItem("m6", "r2", "Paneer Tikka", "Char-grilled cottage cheese", 279, "Starters", true, true, false),
	menuItem("m7", "r2", "Butter Naan", "Soft leavened bread", 49, "Breads", true, false, false),
	menuItem("m8", "r2", "Chicken Biryani", "Fragrant basmati rice with spiced chicken", 299, "Main Course", false, true, true),
	menuItem("m9", "r3", "Whopper", "Flame-grilled beef patty burger", 199, "Burgers", false, false, true),
	menuItem("m10", "r3", "Veggie Burger", "Crispy veg patty with lettuce", 129, "Burgers", true, false, false),
	menuItem("m11", "r3", "Fries", "Salted golden fries", 99, "Sides", true, false, false),
	menuItem("m12", "r3", "Milkshake", "Thick chocolate shake", 149, "Beverages", true, false, false),
	menuItem("m13", "r4", "Hakka Noodles", "Wok-tossed noodles with vegetables", 189, "Noodles", true, false, true),
	menuItem("m14", "r4", "Chilli Chicken", "Crispy chicken in spicy sauce", 249, "Starters", false, true, false),
	menuItem("m15", "r5", "Fettuccine Alfredo", "Creamy parmesan sauce", 429, "Pasta", true, false, true),
	menuItem("m16", "r5", "Tiramisu", "Coffee-soaked ladyfingers with mascarpone", 249, "Desserts", true, false, false),
	menuItem("m17", "r6", "Chocolate Truffle Cake", "Rich dark chocolate slice", 179, "Cakes", true, false, true),
	menuItem("m18", "r6", "Gulab Jamun", "Two warm dumplings in syrup", 89, "Indian Sweets", true, false, false),
	menuItem("m19", "r7", "Quinoa Salad", "Quinoa, greens and lemon dressing", 259, "Salads", true, false, true),
	menuItem("m20", "r7", "Cold Pressed Juice", "Seasonal fruit blend", 149, "Beverages", true, false, false),
	menuItem("m21", "r8", "Hyderabadi Dum Biryani", "Slow-cooked mutton biryani", 389, "Biryani", false, true, true),
	menuItem("m22", "r8", "Veg Biryani", "Mixed vegetable biryani", 249, "Biryani", true, false, false),
	menuItem("m23", "r8", "Raita", "Cucumber yoghurt", 59, "Sides", true, false, false),
}

func order(id, date, restaurant string, items []string, total int64) entity.Order {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Order{
		ID: id, Date: d, RestaurantName: restaurant,
		Items: items, Total: decimal.NewFromInt(total), Status: "Delivered",
	}
}

var OrderHistory = []entity.Order{
	order("ord-001", "2023-05-15", "Spice Paradise", []string{"Butter Chicken", "Naan", "Biryani"}, 850),
	order("ord-002", "2023-05-10", "Pizza Planet", []string{"Pepperoni Pizza", "Garlic Bread", "Coke"}, 699),
	order("ord-003", "2023-05-05", "Burger King", []string{"Whopper", "Fries", "Milkshake"}, 450),
}

// SeedCatalog inserts the static catalog. Rows that already exist are left alone.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, c := range Categories {
			c.Position = i
			if err := tx.Where("id = ?", c.ID).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", c.ID, err)
			}
		}
		for i, r := range Restaurants {
			r.Position = i
			if err := tx.Where("id = ?", r.ID).FirstOrCreate(&r).Error; err != nil {
				return fmt.Errorf("seed restaurant %s: %w", r.ID, err)
			}
		}
		for i, m := range MenuItems {
			m.Position = i
			if err := tx.Where("id = ?", m.ID).FirstOrCreate(&m).Error; err != nil {
				return fmt.Errorf("seed menu item %s: %w", m.ID, err)
			}
		}
		for _, o := range OrderHistory {
			if err := tx.Where("id = ?", o.ID).FirstOrCreate(&o).Error; err != nil {
				return fmt.Errorf("seed order %s: %w", o.ID, err)
			}
		}
		return nil
	})
}
