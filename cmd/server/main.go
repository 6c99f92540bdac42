package main

import (
	"log"
	"time"

	"yoldas/internal/config"
	"yoldas/internal/database"
	"yoldas/internal/handlers"
	"yoldas/internal/redis"
	"yoldas/internal/repository"
	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	mealRepo := repository.NewMealRepository(db)
	modifierRepo := repository.NewModifierRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(ownerRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	menuService := services.NewMenuService(mealRepo, restaurantRepo)
	modifierService := services.NewModifierService(modifierRepo, redisClient, time.Duration(cfg.CatalogCacheTTL)*time.Second)
	cartService := services.NewCartService(menuService, modifierService, redisClient, time.Duration(cfg.CartTTL)*time.Second)
	orderService := services.NewOrderService(orderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	menuHandler := handlers.NewMenuHandler(menuService)
	modifierHandler := handlers.NewModifierHandler(modifierService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.ListApproved)
			restaurants.GET("/owner/:ownerId", restaurantHandler.ListByOwner)
			restaurants.POST("/owner/:ownerId", restaurantHandler.Create)
			restaurants.PATCH("/:id/approve", restaurantHandler.Approve)
			restaurants.PUT("/:id/photo", restaurantHandler.UpdatePhoto)
		}

		menu := api.Group("/menu")
		{
			menu.GET("/restaurants/:restaurantId/meals", menuHandler.ListMeals)
			menu.POST("/restaurants/:restaurantId/meals", menuHandler.AddMeal)
			menu.PATCH("/meals/:mealId", menuHandler.UpdateMeal)
			menu.DELETE("/meals/:mealId", menuHandler.DeleteMeal)
		}

		modifiers := api.Group("/modifiers")
		{
			modifiers.GET("/meals/:mealId", modifierHandler.GroupsForMeal)
			modifiers.GET("/restaurants/:restaurantId/groups", modifierHandler.ListGroups)
			modifiers.POST("/restaurants/:restaurantId/groups", modifierHandler.CreateGroup)
			modifiers.PATCH("/groups/:groupId", modifierHandler.UpdateGroup)
			modifiers.DELETE("/groups/:groupId", modifierHandler.DeleteGroup)
			modifiers.POST("/meals/:mealId/groups/:groupId", modifierHandler.AttachGroup)
			modifiers.DELETE("/meals/:mealId/groups/:groupId", modifierHandler.DetachGroup)
			modifiers.POST("/groups/:groupId/options", modifierHandler.CreateOption)
			modifiers.PATCH("/options/:optionId", modifierHandler.UpdateOption)
			modifiers.DELETE("/options/:optionId", modifierHandler.DeleteOption)
		}

		carts := api.Group("/cart")
		{
			carts.GET("/:session_id", cartHandler.GetCart)
			carts.POST("/:session_id/items", cartHandler.AddItem)
			carts.DELETE("/:session_id/items", cartHandler.RemoveItem)
			carts.DELETE("/:session_id", cartHandler.ClearCart)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/restaurant/:restaurantId", orderHandler.ListOrdersForRestaurant)
			orders.GET("/:orderId/items", orderHandler.GetOrderItems)
			orders.PATCH("/:orderId", orderHandler.ChangeStatus)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
