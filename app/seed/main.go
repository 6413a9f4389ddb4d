package main

import (
	"log"

	"vibecart/domain"
	"vibecart/pkg/config"
	"vibecart/pkg/database"
	"vibecart/pkg/logger"
	"vibecart/pkg/utils"
)

// Seeds the database with the demo accounts and catalog. Wipes existing
// users and products first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
	)
	if err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := db.Exec("DELETE FROM cart_items").Error; err != nil {
		logger.Fatal("Failed to clear cart items", "error", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&domain.User{}).Error; err != nil {
		logger.Fatal("Failed to clear users", "error", err)
	}
	if err := db.Where("1 = 1").Delete(&domain.Product{}).Error; err != nil {
		logger.Fatal("Failed to clear products", "error", err)
	}

	users := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin User", "admin@vibecart.dev", "admin123", domain.RoleAdmin},
		{"John Doe", "user@vibecart.dev", "user123", domain.RoleUser},
	}

	for _, u := range users {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			logger.Fatal("Failed to hash password", "error", err)
		}

		user := domain.User{
			Name:     u.name,
			Email:    u.email,
			Password: hash,
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Fatal("Failed to seed user", "email", u.email, "error", err)
		}
	}

	logger.Info("Users seeded successfully")

	products := []domain.Product{
		{Name: "Wireless Headphones", Price: 79.99, Description: "High-quality wireless headphones with noise cancellation", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", Category: "Electronics", Stock: 15},
		{Name: "Smart Watch", Price: 199.99, Description: "Feature-rich smartwatch with fitness tracking", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", Category: "Electronics", Stock: 20},
		{Name: "Laptop Backpack", Price: 49.99, Description: "Durable backpack with laptop compartment", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500", Category: "Accessories", Stock: 30},
		{Name: "Coffee Maker", Price: 89.99, Description: "Programmable coffee maker with thermal carafe", Image: "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500", Category: "Home", Stock: 12},
		{Name: "Yoga Mat", Price: 29.99, Description: "Non-slip yoga mat with carrying strap", Image: "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500", Category: "Fitness", Stock: 25},
		{Name: "Desk Lamp", Price: 39.99, Description: "LED desk lamp with adjustable brightness", Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500", Category: "Home", Stock: 18},
		{Name: "Water Bottle", Price: 24.99, Description: "Insulated stainless steel water bottle", Image: "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500", Category: "Fitness", Stock: 40},
		{Name: "Bluetooth Speaker", Price: 59.99, Description: "Portable bluetooth speaker with great sound", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500", Category: "Electronics", Stock: 22},
		{Name: "Running Shoes", Price: 119.99, Description: "Comfortable running shoes with cushioned sole", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500", Category: "Fitness", Stock: 16},
		{Name: "Notebook Set", Price: 19.99, Description: "Set of 3 premium notebooks", Image: "https://images.unsplash.com/photo-1517842645767-c639042777db?w=500", Category: "Stationery", Stock: 35},
	}

	if err := db.Create(&products).Error; err != nil {
		logger.Fatal("Failed to seed products", "error", err)
	}

	logger.Info("Products seeded successfully")
	logger.Info("Seed complete",
		"admin_email", "admin@vibecart.dev",
		"user_email", "user@vibecart.dev",
	)
}
