package main

import (
	"fmt"
	"log"

	"yoldas/internal/config"
	"yoldas/internal/database"
	"yoldas/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Owner{},
		&models.Restaurant{},
		&models.Meal{},
		&models.ModifierGroup{},
		&models.ModifierOption{},
		&models.MealGroup{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Owner{},
		&models.Restaurant{},
		&models.Meal{},
		&models.ModifierGroup{},
		&models.ModifierOption{},
		&models.MealGroup{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding demo data...")
	if err := seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("Database initialized successfully")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := models.Owner{Name: "Demo Owner", Email: "owner@example.com", PasswordHash: string(hash)}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	restaurant := models.Restaurant{
		OwnerID:  owner.ID,
		Name:     "Merdem Kebap",
		Location: "Ashgabat",
		Cuisine:  "Turkmen",
		Phone:    "+993 12 345678",
		Opens:    "10:00",
		Closes:   "23:00",
		Rating:   4.6,
		Approved: true,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	meals := []models.Meal{
		{RestaurantID: restaurant.ID, OwnerID: owner.ID, Section: "Main", Name: "Lamb Kebap", Price: 20.00, Discount: 25},
		{RestaurantID: restaurant.ID, OwnerID: owner.ID, Section: "Main", Name: "Chicken Burger", Price: 10.00},
		{RestaurantID: restaurant.ID, OwnerID: owner.ID, Section: "Drinks", Name: "Green Tea", Price: 4.50},
	}
	if err := db.Create(&meals).Error; err != nil {
		return err
	}

	spiciness := models.ModifierGroup{
		RestaurantID: restaurant.ID,
		Name:         "Spiciness",
		Required:     true,
		MinSelect:    1,
		MaxSelect:    1,
		Scope:        string(models.ScopeFood),
		Options: []models.ModifierOption{
			{Name: "Not spicy", IsDefault: true},
			{Name: "Mild"},
			{Name: "Hot"},
			{Name: "Extra hot", PriceDelta: 0.50},
		},
	}
	if err := db.Create(&spiciness).Error; err != nil {
		return err
	}

	toppings := models.ModifierGroup{
		RestaurantID: restaurant.ID,
		Name:         "Toppings",
		MaxSelect:    3,
		Scope:        string(models.ScopeBoth),
		Options: []models.ModifierOption{
			{Name: "Cheese", PriceDelta: 1.00},
			{Name: "Bacon", PriceDelta: 1.50},
			{Name: "Onion", PriceDelta: 0.25},
		},
	}
	if err := db.Create(&toppings).Error; err != nil {
		return err
	}

	links := []models.MealGroup{
		{MealID: meals[0].ID, GroupID: spiciness.ID},
		{MealID: meals[0].ID, GroupID: toppings.ID},
		{MealID: meals[1].ID, GroupID: spiciness.ID},
		{MealID: meals[1].ID, GroupID: toppings.ID},
	}
	return db.Create(&links).Error
}
